package translator

import "testing"

func TestEmpty(t *testing.T) {
	c := Empty()
	if !c.IsEmpty() {
		t.Error("Empty() is not IsEmpty()")
	}
	if c.Data == nil {
		t.Error("Empty() Data is nil, want initialized map")
	}
}

func TestWithInstructions(t *testing.T) {
	c := WithInstructions(ConfigType("markdown"), "hello")
	if c.IsEmpty() {
		t.Error("WithInstructions() is IsEmpty()")
	}
	if !c.HasInstructions {
		t.Error("HasInstructions = false")
	}
	if c.Instructions != "hello" {
		t.Errorf("Instructions = %q, want hello", c.Instructions)
	}
}

func TestWithData(t *testing.T) {
	c := Empty().WithData("key", "value")
	if c.IsEmpty() {
		t.Error("WithData() is IsEmpty()")
	}
	if c.Data["key"] != "value" {
		t.Errorf("Data[key] = %v, want value", c.Data["key"])
	}
}

func TestWithMCPServers(t *testing.T) {
	servers := map[string]any{"a": 1}
	c := Empty().WithMCPServers(servers)
	if c.IsEmpty() {
		t.Error("WithMCPServers() is IsEmpty()")
	}
	if c.MCPServers == nil {
		t.Error("MCPServers = nil")
	}
}
