package writer

import (
	"os"
	"strings"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/translator"
)

// managedStart and managedEnd delimit the section a MarkdownWriter
// owns; everything outside them is the user's and is carried forward
// unchanged.
const (
	managedStart = "<!-- repo:managed:start -->"
	managedEnd   = "<!-- repo:managed:end -->"
)

// MarkdownWriter merges content into the managed section of a Markdown
// file, preserving any surrounding user-authored content.
type MarkdownWriter struct{}

func (w *MarkdownWriter) Write(path string, content translator.Content, _ *SchemaKeys) error {
	user, _ := parseManagedSections(path)
	managed := content.Instructions
	return atomicio.Write(path, []byte(combineManagedSections(user, managed)), atomicio.DefaultConfig())
}

func (w *MarkdownWriter) CanHandle(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

// ReadManagedSection returns the current managed-section body of path
// and whether the file exists at all, letting a caller compare it
// against freshly rendered content without going through Write.
func ReadManagedSection(path string) (managed string, exists bool) {
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	_, managed = parseManagedSections(path)
	return managed, true
}

// parseManagedSections splits an existing file into (userContent,
// managedContent). A file with no markers is entirely user content; a
// missing file is empty on both sides.
func parseManagedSections(path string) (user, managed string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ""
	}
	content := string(data)

	start := strings.Index(content, managedStart)
	end := strings.Index(content, managedEnd)
	if start == -1 || end == -1 || end < start {
		return content, ""
	}

	before := strings.TrimRight(content[:start], "\n\r\t ")
	after := strings.TrimLeft(content[end+len(managedEnd):], "\n\r\t ")

	if after == "" {
		user = before
	} else {
		user = before + "\n\n" + after
	}
	managed = strings.TrimSpace(content[start+len(managedStart) : end])
	return user, managed
}

// combineManagedSections rebuilds a file from its user content and a
// fresh managed body.
func combineManagedSections(user, managed string) string {
	var b strings.Builder
	if user != "" {
		b.WriteString(user)
		b.WriteString("\n\n")
	}
	b.WriteString(managedStart)
	b.WriteString("\n")
	b.WriteString(managed)
	b.WriteString("\n")
	b.WriteString(managedEnd)
	b.WriteString("\n")
	return b.String()
}
