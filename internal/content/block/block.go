// Package block implements the two marker families the content substrate
// uses to carve managed regions into files the user also edits:
// HTML-comment markers (plaintext, Markdown) and hash-comment markers
// (TOML, YAML). Both families share the same find/insert/update/remove
// semantics; only the marker grammar differs, so the scanning and span
// logic lives once here and each handlers package supplies a Style.
package block

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// Block is a UUID-addressed, marker-delimited region found in a source
// document. Span is the byte range of the *entire* marked region
// (including both markers) within the source it was found in.
type Block struct {
	UUID    string
	Content string
	Span    [2]int
}

// LocationKind selects where InsertBlock places a new block.
type LocationKind int

const (
	// LocationEnd appends the block at the end of the file.
	LocationEnd LocationKind = iota
	// LocationOffset inserts at a specific byte offset (clamped to the
	// source length).
	LocationOffset
	// LocationAfterAnchor inserts after the first occurrence of Anchor.
	LocationAfterAnchor
	// LocationBeforeAnchor inserts before the first occurrence of Anchor.
	LocationBeforeAnchor
)

// Location describes where to place a newly inserted block.
type Location struct {
	Kind   LocationKind
	Offset int
	Anchor string
}

// AtEnd is the common case: append to the end of the file.
var AtEnd = Location{Kind: LocationEnd}

// Style supplies the marker grammar for one comment family.
type Style struct {
	// Name identifies the style for error messages ("html-comment",
	// "hash-comment").
	Name string

	// openAny matches any opening marker, capturing the UUID in group 1.
	openAny *regexp.Regexp

	// openText/closeText render the literal marker text for a UUID.
	openText  func(uuid string) string
	closeText func(uuid string) string

	// closeFor returns a regex matching the closing marker for exactly
	// the given UUID.
	closeFor func(uuid string) *regexp.Regexp
}

var uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// HTML is the marker style used by plaintext and Markdown:
// <!-- repo:block:<uuid> --> ... <!-- /repo:block:<uuid> -->
var HTML = Style{
	Name:    "html-comment",
	openAny: regexp.MustCompile(`<!--\s*repo:block:(` + uuidPattern + `)\s*-->`),
	openText: func(uuid string) string {
		return fmt.Sprintf("<!-- repo:block:%s -->", uuid)
	},
	closeText: func(uuid string) string {
		return fmt.Sprintf("<!-- /repo:block:%s -->", uuid)
	},
	closeFor: func(uuid string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)<!--\s*/repo:block:` + regexp.QuoteMeta(uuid) + `\s*-->`)
	},
}

// Hash is the marker style used by TOML and YAML:
// # repo:block:<uuid> ... # /repo:block:<uuid>
var Hash = Style{
	Name:    "hash-comment",
	openAny: regexp.MustCompile(`#\s*repo:block:(` + uuidPattern + `)`),
	openText: func(uuid string) string {
		return fmt.Sprintf("# repo:block:%s", uuid)
	},
	closeText: func(uuid string) string {
		return fmt.Sprintf("# /repo:block:%s", uuid)
	},
	closeFor: func(uuid string) *regexp.Regexp {
		return regexp.MustCompile(`(?i)#\s*/repo:block:` + regexp.QuoteMeta(uuid))
	},
}

// Find scans src for every well-formed block under style. A block with no
// matching closer is malformed and silently skipped, per spec.
func Find(src []byte, style Style) []Block {
	var blocks []Block
	s := string(src)
	pos := 0

	for pos < len(s) {
		loc := style.openAny.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		openStart := pos + loc[0]
		openEnd := pos + loc[1]
		uuid := strings.ToLower(s[pos+loc[2] : pos+loc[3]])

		closeRe := style.closeFor(uuid)
		closeLoc := closeRe.FindStringIndex(s[openEnd:])
		if closeLoc == nil {
			// Malformed: no closer for this UUID. Skip past the open
			// marker and keep scanning.
			pos = openEnd
			continue
		}
		closeStart := openEnd + closeLoc[0]
		closeEnd := openEnd + closeLoc[1]

		content := s[openEnd:closeStart]
		content = strings.TrimPrefix(content, "\n")
		content = strings.TrimSuffix(content, "\n")

		blocks = append(blocks, Block{
			UUID:    uuid,
			Content: content,
			Span:    [2]int{openStart, closeEnd},
		})

		pos = closeEnd
	}

	return blocks
}

// FindByUUID returns the single block matching uuid, if any.
func FindByUUID(src []byte, style Style, uuid string) (Block, bool) {
	uuid = strings.ToLower(uuid)
	for _, b := range Find(src, style) {
		if b.UUID == uuid {
			return b, true
		}
	}
	return Block{}, false
}

// Render produces the literal marker text for a block: open, content,
// close, each newline-separated.
func Render(style Style, uuid, content string) string {
	return style.openText(uuid) + "\n" + content + "\n" + style.closeText(uuid) + "\n"
}

// Insert places a new block at loc, or replaces it in-place if a block
// with the same UUID already exists (insert is idempotent by
// construction).
func Insert(src []byte, style Style, uuid, content string, loc Location) ([]byte, error) {
	uuid = strings.ToLower(uuid)

	if existing, ok := FindByUUID(src, style, uuid); ok {
		return replaceSpan(src, existing.Span, Render(style, uuid, content)), nil
	}

	blockText := Render(style, uuid, content)

	s := string(src)

	switch loc.Kind {
	case LocationEnd:
		if len(s) == 0 {
			return []byte(blockText), nil
		}
		sep := ""
		if !strings.HasSuffix(s, "\n") {
			sep = "\n"
		}
		return []byte(s + sep + blockText), nil

	case LocationOffset:
		offset := loc.Offset
		if offset < 0 {
			offset = 0
		}
		if offset > len(s) {
			offset = len(s)
		}
		prefix := s[:offset]
		suffix := s[offset:]
		sep := ""
		if offset > 0 && !strings.HasSuffix(prefix, "\n") {
			sep = "\n"
		}
		return []byte(prefix + sep + blockText + suffix), nil

	case LocationAfterAnchor:
		idx := strings.Index(s, loc.Anchor)
		if idx < 0 {
			return nil, rerrors.Newf(rerrors.KindNotFound, "anchor %q not found", loc.Anchor)
		}
		insertAt := idx + len(loc.Anchor)
		if style.Name == "hash-comment" {
			if nl := strings.IndexByte(s[insertAt:], '\n'); nl >= 0 {
				insertAt += nl + 1
			} else {
				insertAt = len(s)
			}
			return []byte(s[:insertAt] + blockText + s[insertAt:]), nil
		}
		return []byte(s[:insertAt] + blockText + s[insertAt:]), nil

	case LocationBeforeAnchor:
		idx := strings.Index(s, loc.Anchor)
		if idx < 0 {
			return nil, rerrors.Newf(rerrors.KindNotFound, "anchor %q not found", loc.Anchor)
		}
		return []byte(s[:idx] + blockText + s[idx:]), nil
	}

	return nil, rerrors.Newf(rerrors.KindUser, "unknown insert location kind %d", loc.Kind)
}

// Update replaces the content of an existing block, keeping its location.
func Update(src []byte, style Style, uuid, newContent string) ([]byte, error) {
	uuid = strings.ToLower(uuid)
	existing, ok := FindByUUID(src, style, uuid)
	if !ok {
		return nil, rerrors.WithPath(rerrors.KindBlockNotFound, "block not found", uuid, nil)
	}
	return replaceSpan(src, existing.Span, Render(style, uuid, newContent)), nil
}

// Remove deletes a block's entire span, including one trailing newline if
// present. Hash and HTML marker families have no container to clean up;
// the JSON handler's reserved-key container removal is handled separately
// at that layer.
func Remove(src []byte, style Style, uuid string) ([]byte, error) {
	uuid = strings.ToLower(uuid)
	existing, ok := FindByUUID(src, style, uuid)
	if !ok {
		return nil, rerrors.WithPath(rerrors.KindBlockNotFound, "block not found", uuid, nil)
	}

	s := string(src)
	end := existing.Span[1]
	if end < len(s) && s[end] == '\n' {
		end++
	}
	result := s[:existing.Span[0]] + s[end:]

	return []byte(result), nil
}

// replaceSpan swaps span for replacement. Render already ends in a
// newline, so one newline directly after the span is consumed too;
// otherwise every replace would add a blank line.
func replaceSpan(src []byte, span [2]int, replacement string) []byte {
	s := string(src)
	end := span[1]
	if end < len(s) && s[end] == '\n' {
		end++
	}
	return []byte(s[:span[0]] + replacement + s[end:])
}
