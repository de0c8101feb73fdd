package tools

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinCount(t *testing.T) {
	if len(Builtins()) != BuiltinCount {
		t.Errorf("len(Builtins()) = %d, want %d", len(Builtins()), BuiltinCount)
	}
}

func TestNoDuplicateSlugs(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Builtins() {
		if seen[b.Slug] {
			t.Errorf("duplicate slug %q", b.Slug)
		}
		seen[b.Slug] = true
	}
	if len(seen) != BuiltinCount {
		t.Errorf("got %d distinct slugs, want %d", len(seen), BuiltinCount)
	}
}

func TestAllExpectedToolsPresent(t *testing.T) {
	r := NewRegistry()
	for _, slug := range []string{
		"vscode", "cursor", "zed", "jetbrains", "windsurf", "antigravity",
		"claude", "claude_desktop", "aider", "gemini",
		"cline", "roo",
		"copilot", "amazonq",
	} {
		if !r.Has(slug) {
			t.Errorf("registry missing built-in tool %q", slug)
		}
	}
}

func TestLoadCustomDir_AddsTool(t *testing.T) {
	dir := t.TempDir()
	toml := `
[meta]
name = "Internal Tool"
slug = "internal-tool"

[integration]
config_path = ".internal/rules.md"
type = "markdown"

[capabilities]
supports_custom_instructions = true
`
	if err := os.WriteFile(filepath.Join(dir, "internal-tool.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r := NewRegistry()
	if err := r.LoadCustomDir(dir); err != nil {
		t.Fatalf("LoadCustomDir() error = %v", err)
	}

	reg, ok := r.Get("internal-tool")
	if !ok {
		t.Fatal("custom tool not registered")
	}
	if !reg.SupportsInstructions() {
		t.Error("custom tool capabilities not loaded")
	}
}

func TestLoadCustomDir_MissingDirIsNotAnError(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadCustomDir(filepath.Join(t.TempDir(), "nonexistent")); err != nil {
		t.Errorf("LoadCustomDir() error = %v, want nil for a missing directory", err)
	}
}

func TestLoadCustomDir_MalformedFileWarnsAndSkips(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("not [ valid toml"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	r := NewRegistry()
	if err := r.LoadCustomDir(dir); err != nil {
		t.Fatalf("LoadCustomDir() error = %v, want nil (malformed files are warnings)", err)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("Warnings = %v, want exactly 1", r.Warnings)
	}
	if len(r.All()) != BuiltinCount {
		t.Errorf("All() = %d entries, want only the built-ins after a skipped file", len(r.All()))
	}
}

func TestRegister_OverridesExistingSlug(t *testing.T) {
	r := NewRegistry()
	custom := NewRegistration("vscode", "Custom VS Code", CategoryIDE, Definition{
		Meta: Meta{Name: "Custom VS Code", Slug: "vscode"},
	})
	r.Register(custom)

	reg, ok := r.Get("vscode")
	if !ok {
		t.Fatal("vscode not registered")
	}
	if reg.Name != "Custom VS Code" {
		t.Errorf("Name = %q, want override to take effect", reg.Name)
	}
}

func TestAll_OrderedByPriorityThenSlug(t *testing.T) {
	r := NewRegistry()
	all := r.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Priority > all[i].Priority {
			t.Fatalf("All() not sorted by priority at index %d: %+v then %+v", i, all[i-1], all[i])
		}
		if all[i-1].Priority == all[i].Priority && all[i-1].Slug > all[i].Slug {
			t.Fatalf("All() not sorted by slug within a priority at index %d: %q then %q", i, all[i-1].Slug, all[i].Slug)
		}
	}
}

func TestByCategory(t *testing.T) {
	r := NewRegistry()
	ides := r.ByCategory(CategoryIDE)
	for _, reg := range ides {
		if reg.Category != CategoryIDE {
			t.Errorf("ByCategory(ide) returned %+v", reg)
		}
	}
	if len(ides) == 0 {
		t.Error("ByCategory(ide) returned no tools")
	}
}
