package translator

import (
	"testing"

	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
)

func makeTool(instructions, mcp, rulesDir bool, format tools.ConfigType) tools.Registration {
	return tools.NewRegistration("test", "Test", tools.CategoryIDE, tools.Definition{
		Meta: tools.Meta{Name: "Test", Slug: "test"},
		Integration: tools.IntegrationConfig{
			ConfigPath: ".test",
			ConfigType: format,
		},
		Capabilities: tools.Capabilities{
			SupportsCustomInstructions: instructions,
			SupportsMCP:                mcp,
			SupportsRulesDirectory:     rulesDir,
		},
	})
}

func makeRule(id string) rules.Rule {
	return rules.New(id, "Rule "+id+" content", nil)
}

func TestTranslate_WithInstructionsCapability(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigMarkdown)
	content := Translate(tool, []rules.Rule{makeRule("r1")}, nil)
	if content.IsEmpty() {
		t.Error("Translate() is empty, want instructions")
	}
	if !content.HasInstructions {
		t.Error("HasInstructions = false")
	}
}

func TestTranslate_WithoutCapabilities(t *testing.T) {
	tool := makeTool(false, false, false, tools.ConfigMarkdown)
	content := Translate(tool, []rules.Rule{makeRule("r1")}, nil)
	if !content.IsEmpty() {
		t.Errorf("Translate() = %+v, want empty", content)
	}
}

func TestTranslate_FormatPreserved(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigJSON)
	content := Translate(tool, []rules.Rule{makeRule("r1")}, nil)
	if content.Format != tools.ConfigJSON {
		t.Errorf("Format = %v, want json", content.Format)
	}
}

func TestTranslate_MCPWhenSupported(t *testing.T) {
	tool := makeTool(false, true, false, tools.ConfigJSON)
	servers := map[string]any{"my-server": map[string]any{"command": "python"}}
	content := Translate(tool, nil, servers)
	if content.MCPServers == nil {
		t.Error("MCPServers = nil, want set")
	}
}

func TestTranslate_MCPWhenNotSupported(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigJSON)
	servers := map[string]any{"my-server": map[string]any{"command": "python"}}
	content := Translate(tool, nil, servers)
	if content.MCPServers != nil {
		t.Error("MCPServers set, want nil since tool doesn't support MCP")
	}
}

func TestHasCapabilities(t *testing.T) {
	if HasCapabilities(makeTool(false, false, false, tools.ConfigText)) {
		t.Error("HasCapabilities() = true, want false")
	}
	if !HasCapabilities(makeTool(true, false, false, tools.ConfigText)) {
		t.Error("HasCapabilities() = false, want true")
	}
}
