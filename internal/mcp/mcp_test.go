package mcp

import "testing"

func TestFromPresets_DecodesServer(t *testing.T) {
	presets := map[string]any{
		"tool:mcp:fs": map[string]any{
			"command": "mcp-server-fs",
			"args":    []any{"--root", "."},
			"env":     map[string]any{"DEBUG": "1"},
		},
		"env:python": map[string]any{"version": "3.12"},
	}
	r := FromPresets(presets)

	s, ok := r.Get("fs")
	if !ok {
		t.Fatal("server \"fs\" not registered")
	}
	if s.Command != "mcp-server-fs" {
		t.Errorf("Command = %q", s.Command)
	}
	if len(s.Args) != 2 || s.Args[0] != "--root" {
		t.Errorf("Args = %v", s.Args)
	}
	if s.Env["DEBUG"] != "1" {
		t.Errorf("Env[DEBUG] = %q", s.Env["DEBUG"])
	}
}

func TestFromPresets_IgnoresNonMCPEntries(t *testing.T) {
	r := FromPresets(map[string]any{"env:python": map[string]any{"version": "3.12"}})
	if len(r.All()) != 0 {
		t.Errorf("All() = %v, want empty", r.All())
	}
}

func TestFromPresets_SkipsMalformedEntry(t *testing.T) {
	r := FromPresets(map[string]any{"tool:mcp:bad": "not a map"})
	if len(r.All()) != 0 {
		t.Errorf("All() = %v, want empty for a malformed entry", r.All())
	}
}

func TestAll_SortedByName(t *testing.T) {
	r := NewRegistry()
	r.Register(Server{Name: "zzz"})
	r.Register(Server{Name: "aaa"})
	all := r.All()
	if len(all) != 2 || all[0].Name != "aaa" {
		t.Errorf("All() = %v, want sorted [aaa zzz]", all)
	}
}

func TestAsMap(t *testing.T) {
	r := NewRegistry()
	r.Register(Server{Name: "fs", Command: "mcp-server-fs"})
	m := r.AsMap()
	if m["fs"].Command != "mcp-server-fs" {
		t.Errorf("AsMap()[fs] = %v", m["fs"])
	}
}

func TestIsEmpty(t *testing.T) {
	r := NewRegistry()
	if !r.IsEmpty() {
		t.Error("IsEmpty() = false for new registry")
	}
	r.Register(Server{Name: "fs"})
	if r.IsEmpty() {
		t.Error("IsEmpty() = true after registering a server")
	}
}
