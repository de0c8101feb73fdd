// Package writer places translator.Content into a tool's actual config
// file on disk, picking a merge strategy by file format: full
// replacement for plain text, marker-delimited section merge for
// Markdown, and key-level semantic merge for JSON. Every writer routes
// its final bytes through internal/atomicio so a crash mid-write never
// leaves a config file half-written.
package writer

import (
	"github.com/wgergely/repoctl/internal/tools"
	"github.com/wgergely/repoctl/internal/translator"
)

// SchemaKeys mirrors tools.SchemaKeys so callers don't need to import
// tools just to build one.
type SchemaKeys = tools.SchemaKeys

// ConfigWriter places content into the file at path, using keys (when
// non-nil) to decide where JSON writers should put instructions/MCP
// data.
type ConfigWriter interface {
	Write(path string, content translator.Content, keys *SchemaKeys) error
	CanHandle(path string) bool
}

// Writers returns every built-in writer, in the order CanHandle should
// be tried: most specific format first, Text last as the catch-all.
func Writers() []ConfigWriter {
	return []ConfigWriter{
		&JSONWriter{},
		&MarkdownWriter{},
		&DirectoryWriter{},
		&TextWriter{},
	}
}

// Select returns the first writer in Writers that can handle path.
func Select(path string) ConfigWriter {
	for _, w := range Writers() {
		if w.CanHandle(path) {
			return w
		}
	}
	return &TextWriter{}
}
