// Package plaintextfmt implements the content.Handler for plain text
// files using HTML-comment block markers.
package plaintextfmt

import (
	"strings"

	"github.com/wgergely/repoctl/internal/content"
	"github.com/wgergely/repoctl/internal/content/block"
	"github.com/wgergely/repoctl/internal/content/edit"
	"github.com/wgergely/repoctl/internal/content/formats/commentops"
)

// Handler is the plain-text content.Handler.
type Handler struct{}

// New constructs a plain-text handler.
func New() Handler { return Handler{} }

func (Handler) Format() content.Format { return content.FormatPlainText }

func (Handler) FindBlocks(source []byte) []block.Block {
	return block.Find(source, block.HTML)
}

func (Handler) InsertBlock(source []byte, uuid, text string, loc block.Location) ([]byte, edit.Edit, error) {
	return commentops.InsertBlock(source, block.HTML, uuid, text, loc)
}

func (Handler) UpdateBlock(source []byte, uuid, text string) ([]byte, edit.Edit, error) {
	return commentops.UpdateBlock(source, block.HTML, uuid, text)
}

func (Handler) RemoveBlock(source []byte, uuid string) ([]byte, edit.Edit, error) {
	return commentops.RemoveBlock(source, block.HTML, uuid)
}

// Normalize trims trailing per-line whitespace and the overall document,
// returning the result as a plain string value.
func (Handler) Normalize(source []byte) (any, error) {
	return Normalize(string(source)), nil
}

// Normalize is the shared plain-text normalization: trim trailing
// whitespace from every line, then trim the whole document.
func Normalize(source string) string {
	lines := strings.Split(source, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
