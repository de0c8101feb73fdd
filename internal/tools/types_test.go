package tools

import "testing"

func makeDef() Definition {
	return Definition{
		Meta:        Meta{Name: "Test", Slug: "test"},
		Integration: IntegrationConfig{ConfigPath: ".test", ConfigType: ConfigText},
	}
}

func TestNewRegistration_DefaultPriority(t *testing.T) {
	reg := NewRegistration("test", "Test Tool", CategoryIDE, makeDef())
	if reg.Slug != "test" || reg.Name != "Test Tool" || reg.Category != CategoryIDE {
		t.Errorf("NewRegistration() = %+v", reg)
	}
	if reg.Priority != defaultPriority {
		t.Errorf("Priority = %d, want %d", reg.Priority, defaultPriority)
	}
}

func TestWithPriority(t *testing.T) {
	reg := NewRegistration("test", "Test", CategoryIDE, makeDef()).WithPriority(10)
	if reg.Priority != 10 {
		t.Errorf("Priority = %d, want 10", reg.Priority)
	}
}

func TestCapabilityChecks(t *testing.T) {
	def := makeDef()
	def.Capabilities.SupportsCustomInstructions = true
	reg := NewRegistration("test", "Test", CategoryIDE, def)

	if !reg.SupportsInstructions() {
		t.Error("SupportsInstructions() = false")
	}
	if reg.SupportsMCP() {
		t.Error("SupportsMCP() = true")
	}
	if !reg.HasAnyCapability() {
		t.Error("HasAnyCapability() = false")
	}
}

func TestNoCapabilities(t *testing.T) {
	reg := NewRegistration("test", "Test", CategoryIDE, makeDef())
	if reg.HasAnyCapability() {
		t.Error("HasAnyCapability() = true for a tool with no capabilities")
	}
}
