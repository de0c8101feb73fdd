package tomlfmt

import (
	"strings"
	"testing"

	"github.com/wgergely/repoctl/internal/content/block"
)

const uuidA = "550e8400-e29b-41d4-a716-446655440000"

func TestFindBlocks(t *testing.T) {
	h := New()
	src := "[package]\nname = \"test\"\n\n# repo:block:" + uuidA + "\n[managed]\nkey = \"value\"\n# /repo:block:" + uuidA + "\n\n[other]\nfoo = \"bar\"\n"
	blocks := h.FindBlocks([]byte(src))
	if len(blocks) != 1 || blocks[0].UUID != uuidA {
		t.Fatalf("FindBlocks() = %+v", blocks)
	}
	if !strings.Contains(blocks[0].Content, "[managed]") {
		t.Errorf("block content = %q, want it to retain [managed]", blocks[0].Content)
	}
}

func TestInsertBlock(t *testing.T) {
	h := New()
	out, _, err := h.InsertBlock([]byte("[package]\nname = \"test\"\n"), uuidA, "[managed]\nkey = \"value\"", block.AtEnd)
	if err != nil {
		t.Fatalf("InsertBlock() error = %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "# repo:block:") || !strings.Contains(s, "[managed]") || !strings.Contains(s, "# /repo:block:") {
		t.Errorf("InsertBlock() = %q", s)
	}
}

func TestUpdateBlock(t *testing.T) {
	h := New()
	src := "[package]\nname = \"test\"\n\n# repo:block:" + uuidA + "\n[managed]\nkey = \"old\"\n# /repo:block:" + uuidA + "\n"
	out, e, err := h.UpdateBlock([]byte(src), uuidA, "[managed]\nkey = \"new\"")
	if err != nil {
		t.Fatalf("UpdateBlock() error = %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "key = \"new\"") || strings.Contains(s, "key = \"old\"") {
		t.Errorf("UpdateBlock() = %q", s)
	}
	if e.Kind != "block_update" {
		t.Errorf("edit.Kind = %s, want block_update", e.Kind)
	}
}

func TestRemoveBlock(t *testing.T) {
	h := New()
	src := "[package]\nname = \"test\"\n\n# repo:block:" + uuidA + "\n[managed]\nkey = \"value\"\n# /repo:block:" + uuidA + "\n\n[other]\nfoo = \"bar\"\n"
	out, _, err := h.RemoveBlock([]byte(src), uuidA)
	if err != nil {
		t.Fatalf("RemoveBlock() error = %v", err)
	}
	s := string(out)
	if strings.Contains(s, "repo:block") || strings.Contains(s, "[managed]") {
		t.Errorf("RemoveBlock() = %q, want markers and managed table gone", s)
	}
	if !strings.Contains(s, "[package]") || !strings.Contains(s, "[other]") {
		t.Errorf("RemoveBlock() dropped unrelated tables: %q", s)
	}
}

func TestNormalize_KeyOrderIndependent(t *testing.T) {
	h := New()
	n1, err := h.Normalize([]byte("[a]\nx = 1\n[b]\ny = 2\n"))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	n2, err := h.Normalize([]byte("[b]\ny = 2\n[a]\nx = 1\n"))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	m1, _ := n1.(map[string]any)
	m2, _ := n2.(map[string]any)
	if len(m1) != 2 || len(m2) != 2 {
		t.Fatalf("Normalize() = %+v / %+v", n1, n2)
	}
}

func TestNormalize_ArrayOfTables(t *testing.T) {
	h := New()
	src := "[[bin]]\nname = \"first\"\n\n[[bin]]\nname = \"second\"\n"
	got, err := h.Normalize([]byte(src))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	m := got.(map[string]any)
	arr, ok := m["bin"].([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("Normalize()[\"bin\"] = %+v, want a 2-element array", m["bin"])
	}
}

func TestBlockNotFound(t *testing.T) {
	h := New()
	if _, _, err := h.UpdateBlock([]byte("[package]\nname = \"test\"\n"), uuidA, "x"); err == nil {
		t.Error("expected BlockNotFound error")
	}
}
