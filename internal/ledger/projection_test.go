package ledger

import "testing"

func TestTextBlockProjection(t *testing.T) {
	p := TextBlockProjection("cursor", ".cursor/rules/test.mdc", "550e8400-e29b-41d4-a716-446655440000", "abc123")
	if p.Backend != BackendTextBlock {
		t.Errorf("Backend = %v, want %v", p.Backend, BackendTextBlock)
	}
	if p.Tool != "cursor" || p.Marker != "550e8400-e29b-41d4-a716-446655440000" || p.Checksum != "abc123" {
		t.Errorf("p = %+v", p)
	}
}

func TestJSONKeyProjection(t *testing.T) {
	p := JSONKeyProjection("vscode", ".vscode/settings.json", "editor.tabSize", 4)
	if p.Backend != BackendJSONKey {
		t.Errorf("Backend = %v, want %v", p.Backend, BackendJSONKey)
	}
	if p.Path != "editor.tabSize" || p.Value != 4 {
		t.Errorf("p = %+v", p)
	}
}

func TestFileManagedProjection(t *testing.T) {
	p := FileManagedProjection("claude", "CLAUDE.md", "deadbeef")
	if p.Backend != BackendFileManaged {
		t.Errorf("Backend = %v, want %v", p.Backend, BackendFileManaged)
	}
	if p.Checksum != "deadbeef" {
		t.Errorf("Checksum = %q, want deadbeef", p.Checksum)
	}
}
