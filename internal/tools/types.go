// Package tools implements the unified tool registry: metadata and
// capability declarations for every editor/agent repoctl can write
// managed config into, whether built in or declared by the user under
// .repository/tools/*.toml.
package tools

// Category groups tools for filtering and listing.
type Category string

const (
	CategoryIDE        Category = "ide"
	CategoryCLIAgent   Category = "cli_agent"
	CategoryAutonomous Category = "autonomous"
	CategoryCopilot    Category = "copilot"
)

// ConfigType identifies the file format a tool's primary config uses.
type ConfigType string

const (
	ConfigText     ConfigType = "text"
	ConfigJSON     ConfigType = "json"
	ConfigTOML     ConfigType = "toml"
	ConfigYAML     ConfigType = "yaml"
	ConfigMarkdown ConfigType = "markdown"
)

// Meta is a tool's display identity.
type Meta struct {
	Name        string `toml:"name"`
	Slug        string `toml:"slug"`
	Description string `toml:"description,omitempty"`
}

// IntegrationConfig describes where and in what format a tool's config
// lives.
type IntegrationConfig struct {
	ConfigPath      string     `toml:"config_path"`
	ConfigType      ConfigType `toml:"type"`
	AdditionalPaths []string   `toml:"additional_paths,omitempty"`
}

// Capabilities flags what a tool's config format can express.
type Capabilities struct {
	SupportsCustomInstructions bool `toml:"supports_custom_instructions"`
	SupportsMCP                bool `toml:"supports_mcp"`
	SupportsRulesDirectory     bool `toml:"supports_rules_directory"`
}

// SchemaKeys locates tool-specific settings within a JSON config.
type SchemaKeys struct {
	InstructionKey string `toml:"instruction_key,omitempty"`
	MCPKey         string `toml:"mcp_key,omitempty"`
	PythonPathKey  string `toml:"python_path_key,omitempty"`
}

// Definition is a tool's complete, loadable description.
type Definition struct {
	Meta         Meta              `toml:"meta"`
	Integration  IntegrationConfig `toml:"integration"`
	Capabilities Capabilities      `toml:"capabilities"`
	SchemaKeys   *SchemaKeys       `toml:"schema,omitempty"`
}

// Registration is a complete tool entry in the registry: identity,
// ordering, and its definition.
type Registration struct {
	Slug       string
	Name       string
	Category   Category
	Priority   uint8
	Definition Definition
}

// defaultPriority is the priority new registrations get unless
// overridden; lower values sort first.
const defaultPriority = 50

// NewRegistration builds a registration at the default priority.
func NewRegistration(slug, name string, category Category, def Definition) Registration {
	return Registration{Slug: slug, Name: name, Category: category, Priority: defaultPriority, Definition: def}
}

// WithPriority returns a copy of r with Priority set.
func (r Registration) WithPriority(priority uint8) Registration {
	r.Priority = priority
	return r
}

// SupportsInstructions reports whether the tool's config can carry
// custom instructions.
func (r Registration) SupportsInstructions() bool {
	return r.Definition.Capabilities.SupportsCustomInstructions
}

// SupportsMCP reports whether the tool's config can carry MCP server
// declarations.
func (r Registration) SupportsMCP() bool {
	return r.Definition.Capabilities.SupportsMCP
}

// SupportsRulesDirectory reports whether the tool reads a directory of
// per-rule files in addition to its primary config.
func (r Registration) SupportsRulesDirectory() bool {
	return r.Definition.Capabilities.SupportsRulesDirectory
}

// HasAnyCapability reports whether the tool has at least one capability
// that requires syncing.
func (r Registration) HasAnyCapability() bool {
	return r.SupportsInstructions() || r.SupportsMCP() || r.SupportsRulesDirectory()
}
