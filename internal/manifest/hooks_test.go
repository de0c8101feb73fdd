package manifest

import "testing"

func TestParseHookEvent_Valid(t *testing.T) {
	event, ok := ParseHookEvent("post-branch-create")
	if !ok {
		t.Fatal("ParseHookEvent() ok = false")
	}
	if event != HookPostBranchCreate {
		t.Errorf("event = %v, want %v", event, HookPostBranchCreate)
	}
}

func TestParseHookEvent_Invalid(t *testing.T) {
	if _, ok := ParseHookEvent("invalid-event"); ok {
		t.Error("ParseHookEvent() ok = true, want false")
	}
}

func TestAllHookEvents_ContainsEveryEvent(t *testing.T) {
	events := AllHookEvents()
	if len(events) != len(hookEventOrder) {
		t.Fatalf("AllHookEvents() = %v, want %d entries", events, len(hookEventOrder))
	}
}

func TestManifest_MergeAppendsHooks(t *testing.T) {
	base := Empty()
	base.Hooks = []HookConfig{{Event: HookPreSync, Command: "echo"}}

	other := Empty()
	other.Hooks = []HookConfig{{Event: HookPostSync, Command: "npm", Args: []string{"install"}}}

	base.Merge(other)

	if len(base.Hooks) != 2 {
		t.Fatalf("Hooks = %v, want 2", base.Hooks)
	}
	if base.Hooks[1].Command != "npm" {
		t.Errorf("Hooks[1].Command = %q, want npm", base.Hooks[1].Command)
	}
}
