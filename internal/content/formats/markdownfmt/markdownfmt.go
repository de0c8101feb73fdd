// Package markdownfmt implements the content.Handler for Markdown files.
// Block operations are identical to plaintextfmt (HTML-comment markers);
// normalize additionally collapses runs of blank lines.
package markdownfmt

import (
	"regexp"
	"strings"

	"github.com/wgergely/repoctl/internal/content"
	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
	"github.com/wgergely/repoctl/internal/content/formats/plaintextfmt"
)

// Handler is the Markdown content.Handler.
type Handler struct{}

// New constructs a Markdown handler.
func New() Handler { return Handler{} }

func (Handler) Format() content.Format { return content.FormatMarkdown }

func (Handler) FindBlocks(source []byte) []block.Block {
	return block.Find(source, block.HTML)
}

func (Handler) InsertBlock(source []byte, uuid, text string, loc block.Location) ([]byte, edit.Edit, error) {
	return plaintextfmt.New().InsertBlock(source, uuid, text, loc)
}

func (Handler) UpdateBlock(source []byte, uuid, text string) ([]byte, edit.Edit, error) {
	return plaintextfmt.New().UpdateBlock(source, uuid, text)
}

func (Handler) RemoveBlock(source []byte, uuid string) ([]byte, edit.Edit, error) {
	return plaintextfmt.New().RemoveBlock(source, uuid)
}

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// Normalize trims trailing per-line whitespace, collapses 3+ consecutive
// newlines down to 2 (one blank line), then trims the whole document.
func (Handler) Normalize(source []byte) (any, error) {
	lines := strings.Split(string(source), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	joined := strings.Join(lines, "\n")
	collapsed := blankRunPattern.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(collapsed), nil
}
