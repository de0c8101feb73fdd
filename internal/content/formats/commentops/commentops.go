// Package commentops holds the block insert/update/remove logic shared
// by every comment-marker format (HTML-comment: plaintext, Markdown;
// hash-comment: TOML, YAML). Each format package supplies the
// block.Style; the edit bookkeeping is identical across all four.
package commentops

import (
	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
)

// InsertBlock inserts a new block at loc, or replaces it in place if uuid
// already exists, returning the resulting bytes and the Edit describing
// the change.
func InsertBlock(source []byte, style block.Style, uuid, text string, loc block.Location) ([]byte, edit.Edit, error) {
	existing, existed := block.FindByUUID(source, style, uuid)

	out, err := block.Insert(source, style, uuid, text, loc)
	if err != nil {
		return nil, edit.Edit{}, err
	}

	if existed {
		newText := block.Render(style, uuid, text)
		e := edit.New(edit.KindBlockUpdate, string(source), replacedSpan(source, existing.Span), newText)
		e.UUID = uuid
		return out, e, nil
	}

	newBlock, ok := block.FindByUUID(out, style, uuid)
	if !ok {
		return out, edit.Edit{}, nil
	}
	insertPos := commonPrefixLen(source, out)
	span := [2]int{insertPos, insertPos}
	e := edit.New(edit.KindBlockInsert, string(source), span, string(out[newBlock.Span[0]:newBlock.Span[1]]))
	e.UUID = uuid
	return out, e, nil
}

// UpdateBlock replaces an existing block's content in place.
func UpdateBlock(source []byte, style block.Style, uuid, text string) ([]byte, edit.Edit, error) {
	existing, ok := block.FindByUUID(source, style, uuid)
	if !ok {
		out, err := block.Update(source, style, uuid, text)
		return out, edit.Edit{}, err
	}
	out, err := block.Update(source, style, uuid, text)
	if err != nil {
		return nil, edit.Edit{}, err
	}
	newText := block.Render(style, uuid, text)
	e := edit.New(edit.KindBlockUpdate, string(source), replacedSpan(source, existing.Span), newText)
	e.UUID = uuid
	return out, e, nil
}

// replacedSpan widens span by the one trailing newline that block.Insert
// and block.Update consume along with it.
func replacedSpan(source []byte, span [2]int) [2]int {
	if span[1] < len(source) && source[span[1]] == '\n' {
		span[1]++
	}
	return span
}

// RemoveBlock deletes an existing block's span, including one trailing
// newline.
func RemoveBlock(source []byte, style block.Style, uuid string) ([]byte, edit.Edit, error) {
	existing, ok := block.FindByUUID(source, style, uuid)
	if !ok {
		out, err := block.Remove(source, style, uuid)
		return out, edit.Edit{}, err
	}
	end := existing.Span[1]
	if end < len(source) && source[end] == '\n' {
		end++
	}
	out, err := block.Remove(source, style, uuid)
	if err != nil {
		return nil, edit.Edit{}, err
	}
	e := edit.New(edit.KindBlockRemove, string(source), [2]int{existing.Span[0], end}, "")
	e.UUID = uuid
	return out, e, nil
}

// commonPrefixLen returns the length of the longest common byte prefix
// of a and b, clamped to len(a) so it is always safe to use as a span
// boundary into a.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	if i > len(a) {
		i = len(a)
	}
	return i
}
