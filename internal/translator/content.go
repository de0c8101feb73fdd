// Package translator turns rules and MCP server declarations into the
// content a specific tool's config writer should place, respecting
// whatever capabilities that tool has declared.
package translator

import "github.com/wgergely/repoctl/internal/tools"

// Content is everything a config writer needs to place into one tool's
// config file.
type Content struct {
	Format ConfigType
	// Instructions is the rendered rule text, set only when the tool
	// supports custom instructions and at least one rule was given.
	Instructions    string
	HasInstructions bool
	// MCPServers is the raw MCP server declaration to merge in, set
	// only when the tool supports MCP and servers were provided.
	MCPServers any
	// Data holds any other key/value pairs a writer should merge into
	// the tool's config (used by JSON writers beyond instructions/MCP).
	Data map[string]any
}

// ConfigType mirrors tools.ConfigType so callers of this package don't
// need to import tools just to name a format.
type ConfigType = tools.ConfigType

// Empty returns content with nothing to write.
func Empty() Content {
	return Content{Data: make(map[string]any)}
}

// WithInstructions returns content carrying instructions for format.
func WithInstructions(format ConfigType, instructions string) Content {
	c := Empty()
	c.Format = format
	c.Instructions = instructions
	c.HasInstructions = true
	return c
}

// IsEmpty reports whether there's nothing for a writer to do.
func (c Content) IsEmpty() bool {
	return !c.HasInstructions && c.MCPServers == nil && len(c.Data) == 0
}

// WithData returns a copy of c with key/value merged into Data.
func (c Content) WithData(key string, value any) Content {
	if c.Data == nil {
		c.Data = make(map[string]any)
	}
	c.Data[key] = value
	return c
}

// WithMCPServers returns a copy of c with MCPServers set.
func (c Content) WithMCPServers(servers any) Content {
	c.MCPServers = servers
	return c
}
