package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wgergely/repoctl/internal/translator"
)

func TestMarkdownWriter_WriteNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	w := &MarkdownWriter{}

	content := translator.WithInstructions(translator.ConfigType("markdown"), "Test instructions")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	written := string(got)
	if !strings.Contains(written, managedStart) || !strings.Contains(written, "Test instructions") || !strings.Contains(written, managedEnd) {
		t.Errorf("written = %q, missing expected markers/content", written)
	}
}

func TestMarkdownWriter_PreservesUserContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	if err := os.WriteFile(path, []byte("# My Rules\n\nThese are my custom rules.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := &MarkdownWriter{}
	content := translator.WithInstructions(translator.ConfigType("markdown"), "Managed content")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	written := string(got)
	if !strings.Contains(written, "# My Rules") || !strings.Contains(written, "These are my custom rules.") {
		t.Errorf("user content lost: %q", written)
	}
	if !strings.Contains(written, "Managed content") {
		t.Errorf("managed content missing: %q", written)
	}
}

func TestMarkdownWriter_UpdatesExistingManagedSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	existing := "# User Content\n\n" + managedStart + "\nOld managed content\n" + managedEnd + "\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := &MarkdownWriter{}
	content := translator.WithInstructions(translator.ConfigType("markdown"), "New managed content")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	written := string(got)
	if !strings.Contains(written, "# User Content") {
		t.Error("user content lost")
	}
	if !strings.Contains(written, "New managed content") || strings.Contains(written, "Old managed content") {
		t.Errorf("managed section not updated: %q", written)
	}
	if strings.Count(written, managedStart) != 1 || strings.Count(written, managedEnd) != 1 {
		t.Errorf("expected exactly one marker pair: %q", written)
	}
}

func TestMarkdownWriter_PreservesContentAfterManagedSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	existing := "# Before\n\n" + managedStart + "\nManaged\n" + managedEnd + "\n\n# After\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := &MarkdownWriter{}
	content := translator.WithInstructions(translator.ConfigType("markdown"), "Updated")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	written := string(got)
	if !strings.Contains(written, "# Before") || !strings.Contains(written, "# After") || !strings.Contains(written, "Updated") {
		t.Errorf("written = %q, missing before/after/updated content", written)
	}
}

func TestReadManagedSection_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	_, exists := ReadManagedSection(path)
	if exists {
		t.Error("ReadManagedSection() exists = true for missing file")
	}
}

func TestReadManagedSection_ReturnsCurrentBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	w := &MarkdownWriter{}
	content := translator.WithInstructions(translator.ConfigType("markdown"), "Some body")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	managed, exists := ReadManagedSection(path)
	if !exists {
		t.Fatal("ReadManagedSection() exists = false")
	}
	if managed != "Some body" {
		t.Errorf("managed = %q, want %q", managed, "Some body")
	}
}

func TestMarkdownWriter_CanHandle(t *testing.T) {
	w := &MarkdownWriter{}
	if !w.CanHandle("/test/rules.md") {
		t.Error("CanHandle(.md) = false")
	}
	if !w.CanHandle("/test/doc.markdown") {
		t.Error("CanHandle(.markdown) = false")
	}
	if w.CanHandle("/test/config.json") {
		t.Error("CanHandle(.json) = true")
	}
}
