package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wgergely/repoctl/internal/translator"
)

func TestTextWriter_WriteNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".toolrules")
	w := &TextWriter{}

	content := translator.WithInstructions(translator.ConfigType("text"), "Rule content here")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "Rule content here" {
		t.Errorf("content = %q, want %q", got, "Rule content here")
	}
}

func TestTextWriter_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".toolrules")
	if err := os.WriteFile(path, []byte("Old content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := &TextWriter{}
	content := translator.WithInstructions(translator.ConfigType("text"), "New content")
	if err := w.Write(path, content, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "New content" {
		t.Errorf("content = %q, want %q", got, "New content")
	}
}

func TestTextWriter_EmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".toolrules")
	w := &TextWriter{}
	if err := w.Write(path, translator.Empty(), nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "" {
		t.Errorf("content = %q, want empty", got)
	}
}

func TestTextWriter_CanHandle(t *testing.T) {
	w := &TextWriter{}
	cases := map[string]bool{
		"/test/.cursorrules": true,
		"/test/.clinerules":  true,
		"/test/rules.txt":    true,
		"/test/config.json":  false,
		"/test/rules.md":     false,
		"/test/config.yaml":  false,
	}
	for path, want := range cases {
		if got := w.CanHandle(path); got != want {
			t.Errorf("CanHandle(%q) = %v, want %v", path, got, want)
		}
	}
}
