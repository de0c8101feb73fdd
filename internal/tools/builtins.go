package tools

// BuiltinCount is the number of tools repoctl ships definitions for
// without requiring a .repository/tools/*.toml file.
const BuiltinCount = 14

// Builtins returns every built-in tool registration. This is the single
// source of truth; listing, lookup, and sync all derive from it.
func Builtins() []Registration {
	return []Registration{
		// IDEs
		NewRegistration("vscode", "VS Code", CategoryIDE, Definition{
			Meta: Meta{Name: "VS Code", Slug: "vscode", Description: "Visual Studio Code"},
			Integration: IntegrationConfig{
				ConfigPath: ".vscode/settings.json",
				ConfigType: ConfigJSON,
			},
			Capabilities: Capabilities{SupportsCustomInstructions: false, SupportsMCP: true},
			SchemaKeys:   &SchemaKeys{MCPKey: "mcpServers", PythonPathKey: "python.defaultInterpreterPath"},
		}),
		NewRegistration("cursor", "Cursor", CategoryIDE, Definition{
			Meta: Meta{Name: "Cursor", Slug: "cursor", Description: "Cursor AI IDE"},
			Integration: IntegrationConfig{
				ConfigPath: ".cursorrules",
				ConfigType: ConfigText,
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true},
		}),
		NewRegistration("zed", "Zed", CategoryIDE, Definition{
			Meta: Meta{Name: "Zed", Slug: "zed", Description: "Zed editor"},
			Integration: IntegrationConfig{
				ConfigPath:      ".rules",
				ConfigType:      ConfigText,
				AdditionalPaths: []string{".zed/settings.json"},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true},
		}),
		NewRegistration("jetbrains", "JetBrains", CategoryIDE, Definition{
			Meta: Meta{Name: "JetBrains", Slug: "jetbrains", Description: "JetBrains AI Assistant"},
			Integration: IntegrationConfig{
				ConfigPath: ".junie/guidelines.md",
				ConfigType: ConfigMarkdown,
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true},
		}),
		NewRegistration("windsurf", "Windsurf", CategoryIDE, Definition{
			Meta: Meta{Name: "Windsurf", Slug: "windsurf", Description: "Windsurf AI IDE"},
			Integration: IntegrationConfig{
				ConfigPath:      ".windsurfrules",
				ConfigType:      ConfigText,
				AdditionalPaths: []string{".windsurf/rules/"},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsRulesDirectory: true},
		}),
		NewRegistration("antigravity", "Antigravity", CategoryIDE, Definition{
			Meta: Meta{Name: "Antigravity", Slug: "antigravity", Description: "Antigravity agentic IDE"},
			Integration: IntegrationConfig{
				ConfigPath: ".agent/rules/",
				ConfigType: ConfigText,
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsMCP: true, SupportsRulesDirectory: true},
		}),

		// CLI agents
		NewRegistration("claude", "Claude Code", CategoryCLIAgent, Definition{
			Meta: Meta{Name: "Claude", Slug: "claude", Description: "Anthropic Claude Code"},
			Integration: IntegrationConfig{
				ConfigPath:      "CLAUDE.md",
				ConfigType:      ConfigMarkdown,
				AdditionalPaths: []string{".claude/rules/"},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsMCP: true, SupportsRulesDirectory: true},
		}),
		NewRegistration("claude_desktop", "Claude Desktop", CategoryCLIAgent, Definition{
			Meta: Meta{Name: "Claude Desktop", Slug: "claude_desktop", Description: "Claude Desktop app"},
			Integration: IntegrationConfig{
				ConfigPath: "claude_desktop_config.json",
				ConfigType: ConfigJSON,
			},
			Capabilities: Capabilities{SupportsMCP: true},
			SchemaKeys:   &SchemaKeys{MCPKey: "mcpServers"},
		}),
		NewRegistration("aider", "Aider", CategoryCLIAgent, Definition{
			Meta: Meta{Name: "Aider", Slug: "aider", Description: "Aider pair-programming CLI"},
			Integration: IntegrationConfig{
				ConfigPath: "CONVENTIONS.md",
				ConfigType: ConfigMarkdown,
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true},
		}),
		NewRegistration("gemini", "Gemini CLI", CategoryCLIAgent, Definition{
			Meta: Meta{Name: "Gemini CLI", Slug: "gemini", Description: "Google Gemini CLI"},
			Integration: IntegrationConfig{
				ConfigPath: "GEMINI.md",
				ConfigType: ConfigText,
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true},
		}),

		// Autonomous agents
		NewRegistration("cline", "Cline", CategoryAutonomous, Definition{
			Meta: Meta{Name: "Cline", Slug: "cline", Description: "Cline autonomous coding agent"},
			Integration: IntegrationConfig{
				ConfigPath:      ".clinerules",
				ConfigType:      ConfigText,
				AdditionalPaths: []string{".clinerules/"},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsRulesDirectory: true},
		}),
		NewRegistration("roo", "Roo", CategoryAutonomous, Definition{
			Meta: Meta{Name: "Roo", Slug: "roo", Description: "Roo Code autonomous agent"},
			Integration: IntegrationConfig{
				ConfigPath:      ".roorules",
				ConfigType:      ConfigText,
				AdditionalPaths: []string{".roo/rules/"},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsRulesDirectory: true},
		}),

		// Copilots
		NewRegistration("copilot", "GitHub Copilot", CategoryCopilot, Definition{
			Meta: Meta{Name: "GitHub Copilot", Slug: "copilot", Description: "GitHub Copilot"},
			Integration: IntegrationConfig{
				ConfigPath:      ".github/copilot-instructions.md",
				ConfigType:      ConfigMarkdown,
				AdditionalPaths: []string{".github/instructions/"},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsRulesDirectory: true},
		}),
		NewRegistration("amazonq", "Amazon Q", CategoryCopilot, Definition{
			Meta: Meta{Name: "Amazon Q", Slug: "amazonq", Description: "Amazon Q Developer"},
			Integration: IntegrationConfig{
				ConfigPath:      ".amazonq/rules/",
				ConfigType:      ConfigText,
				AdditionalPaths: []string{},
			},
			Capabilities: Capabilities{SupportsCustomInstructions: true, SupportsRulesDirectory: true},
		}),
	}
}
