package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_HasCorrectVersion(t *testing.T) {
	l := New()
	if l.Version != ledgerVersion {
		t.Errorf("Version = %q, want %q", l.Version, ledgerVersion)
	}
}

func TestSave_IsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.toml")

	l := New()
	l.AddIntent(NewIntent("rule:test", map[string]any{"key": "value"}))

	if err := l.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tempPath := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
	if _, err := os.Stat(tempPath); !os.IsNotExist(err) {
		t.Error("temporary file should be cleaned up")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Intents) != 1 {
		t.Fatalf("Intents = %v, want 1", loaded.Intents)
	}
	if loaded.Intents[0].ID != "rule:test" {
		t.Errorf("ID = %q, want rule:test", loaded.Intents[0].ID)
	}
	if loaded.Intents[0].Args["key"] != "value" {
		t.Errorf("Args[key] = %v, want value", loaded.Intents[0].Args["key"])
	}

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), `version = "1.0"`) {
		t.Errorf("raw = %q, missing version field", raw)
	}
}

func TestSave_OverwritesPreviousContentCompletely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.toml")

	l := New()
	l.AddIntent(NewIntent("rule:first", nil))
	l.AddIntent(NewIntent("rule:second", nil))
	if err := l.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	smaller := New()
	smaller.AddIntent(NewIntent("rule:only_one", nil))
	if err := smaller.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(reloaded.Intents) != 1 || reloaded.Intents[0].ID != "rule:only_one" {
		t.Fatalf("Intents = %v, want only rule:only_one", reloaded.Intents)
	}

	raw, _ := os.ReadFile(path)
	if strings.Contains(string(raw), "rule:first") || strings.Contains(string(raw), "rule:second") {
		t.Error("old intents must not remain in file")
	}
}

func TestSave_SucceedsAndCreatesMissingParentDirectories(t *testing.T) {
	// atomicio.Write creates parent directories as needed (unlike the
	// ported system's save(), which errors on a missing parent) - this
	// matches atomicio's own documented behavior, exercised here rather
	// than re-asserted as a failure case.
	path := filepath.Join(t.TempDir(), "nested", "subdir", "ledger.toml")
	l := New()
	if err := l.Save(path); err != nil {
		t.Fatalf("Save() error = %v, want nil (atomicio creates parent dirs)", err)
	}
}

func TestLoad_FailsOnNonexistentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.toml")
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want error for nonexistent file")
	}
}

func TestLoadOrCreate_ReturnsEmptyWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.toml")
	l, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	if len(l.Intents) != 0 {
		t.Errorf("Intents = %v, want empty", l.Intents)
	}
}

func TestLedger_AddGetRemoveIntent(t *testing.T) {
	l := New()
	intent := NewIntent("rule:test", nil)
	l.AddIntent(intent)

	got, ok := l.GetIntent(intent.UUID)
	if !ok || got.ID != "rule:test" {
		t.Fatalf("GetIntent() = %v, %v", got, ok)
	}

	removed, ok := l.RemoveIntent(intent.UUID)
	if !ok || removed.ID != "rule:test" {
		t.Fatalf("RemoveIntent() = %v, %v", removed, ok)
	}
	if len(l.Intents) != 0 {
		t.Errorf("Intents = %v, want empty", l.Intents)
	}
}

func TestLedger_FindByRule(t *testing.T) {
	l := New()
	l.AddIntent(NewIntent("rule:a", nil))
	l.AddIntent(NewIntent("rule:b", nil))
	l.AddIntent(NewIntent("rule:a", nil))

	matches := l.FindByRule("rule:a")
	if len(matches) != 2 {
		t.Errorf("FindByRule() = %v, want 2 matches", matches)
	}
}

func TestLedger_ProjectionsForFile(t *testing.T) {
	l := New()
	intent := NewIntent("rule:test", nil)
	intent.AddProjection(TextBlockProjection("cursor", ".cursorrules", "m1", "c1"))
	l.AddIntent(intent)

	matches := l.ProjectionsForFile(".cursorrules")
	if len(matches) != 1 {
		t.Fatalf("ProjectionsForFile() = %v, want 1 match", matches)
	}
	if matches[0].Intent.ID != "rule:test" {
		t.Errorf("Intent.ID = %q, want rule:test", matches[0].Intent.ID)
	}
}

func TestLedger_SequentialSavesPreserveAllIntents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.toml")

	l := New()
	if err := l.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	first, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	first.AddIntent(NewIntent("rule:first", nil))
	if err := first.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second.AddIntent(NewIntent("rule:second", nil))
	if err := second.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	final, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(final.Intents) != 2 {
		t.Fatalf("Intents = %v, want 2", final.Intents)
	}
}
