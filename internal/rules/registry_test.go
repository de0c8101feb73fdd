package rules

import (
	"path/filepath"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	r := New(path)
	if r.Version != registryVersion {
		t.Errorf("Version = %q, want %q", r.Version, registryVersion)
	}
	if len(r.Rules) != 0 {
		t.Errorf("Rules = %v, want empty", r.Rules)
	}
	if r.Path() != path {
		t.Errorf("Path() = %q, want %q", r.Path(), path)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")

	r := New(path)
	if _, err := r.AddRule("test", "content", nil); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Rules) != 1 || loaded.Rules[0].ID != "test" {
		t.Errorf("Load() = %+v", loaded.Rules)
	}
}

func TestLoadOrCreate_New(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.toml")
	r, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	if len(r.Rules) != 0 {
		t.Errorf("Rules = %v, want empty for a fresh registry", r.Rules)
	}
}

func TestLoadOrCreate_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.toml")
	r := New(path)
	if _, err := r.AddRule("existing", "content", nil); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	loaded, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	if len(loaded.Rules) != 1 {
		t.Errorf("Rules = %v, want 1", loaded.Rules)
	}
}

func TestUpdateRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	r := New(path)
	rule, err := r.AddRule("test", "original", nil)
	if err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	if err := r.UpdateRule(rule.UUID, "updated"); err != nil {
		t.Fatalf("UpdateRule() error = %v", err)
	}
	got, ok := r.GetRule(rule.UUID)
	if !ok || got.Content != "updated" {
		t.Errorf("GetRule() = %+v, %v", got, ok)
	}
}

func TestUpdateRule_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	r := New(path)
	if err := r.UpdateRule("00000000-0000-0000-0000-000000000000", "x"); err == nil {
		t.Error("expected an error updating a rule that does not exist")
	}
}

func TestRemoveRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	r := New(path)
	rule, err := r.AddRule("test", "content", nil)
	if err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	removed, ok := r.RemoveRule(rule.UUID)
	if !ok || removed.ID != "test" {
		t.Fatalf("RemoveRule() = %+v, %v", removed, ok)
	}
	if _, ok := r.GetRule(rule.UUID); ok {
		t.Error("rule still present after RemoveRule()")
	}
}

func TestRulesByTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	r := New(path)
	if _, err := r.AddRule("a", "content", []string{"style"}); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}
	if _, err := r.AddRule("b", "content", []string{"other"}); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	got := r.RulesByTag("style")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("RulesByTag(style) = %+v", got)
	}
}

func TestHasRuleID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.toml")
	r := New(path)
	if r.HasRuleID("test") {
		t.Error("HasRuleID() = true before any rule was added")
	}
	if _, err := r.AddRule("test", "content", nil); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}
	if !r.HasRuleID("test") {
		t.Error("HasRuleID() = false after adding the rule")
	}
}
