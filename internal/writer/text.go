package writer

import (
	"strings"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/translator"
)

// TextWriter does a full-file replacement. Use it for tools that own
// their config file entirely, where there's no existing content worth
// preserving.
type TextWriter struct{}

func (w *TextWriter) Write(path string, content translator.Content, _ *SchemaKeys) error {
	return atomicio.Write(path, []byte(content.Instructions), atomicio.DefaultConfig())
}

// CanHandle reports whether path is a format none of the other
// built-in writers claim.
func (w *TextWriter) CanHandle(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml", ".md", ".markdown"} {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	return true
}
