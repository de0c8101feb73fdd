package governance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wgergely/repoctl/internal/content"
	"github.com/wgergely/repoctl/internal/content/formats/jsonfmt"
	"github.com/wgergely/repoctl/internal/content/formats/markdownfmt"
	"github.com/wgergely/repoctl/internal/content/formats/plaintextfmt"
	"github.com/wgergely/repoctl/internal/content/formats/tomlfmt"
	"github.com/wgergely/repoctl/internal/content/formats/yamlfmt"
	"github.com/wgergely/repoctl/internal/manifest"
	"github.com/wgergely/repoctl/internal/mcp"
	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
	"github.com/wgergely/repoctl/internal/translator"
)

// diffRegistry associates every content format this build understands
// with the extensions a tool's rendered config file might carry.
func diffRegistry() *content.Registry {
	reg := content.NewRegistry()
	reg.Register(plaintextfmt.New(), ".txt")
	reg.Register(markdownfmt.New(), ".md", ".mdc")
	reg.Register(jsonfmt.New(), ".json")
	reg.Register(tomlfmt.New(), ".toml")
	reg.Register(yamlfmt.New(), ".yml", ".yaml")
	return reg
}

// describeModified replaces a DriftModified item's generic description
// with a structured summary (changed paths plus a similarity score)
// whenever the tool's config format is one the content substrate
// understands and the file can still be read, rendering the same
// instructions translator.Translate would and diffing it against what's
// actually on disk - the same normalize-then-compare content.Diff
// performs for any format, uniformly.
func describeModified(root string, item Drift, m manifest.Manifest, toolReg *tools.Registry, ruleReg *rules.Registry) Drift {
	reg, ok := toolReg.Get(item.Tool)
	if !ok {
		return item
	}

	handler, ok := diffRegistry().ForExt(filepath.Ext(item.ConfigPath))
	if !ok {
		return item
	}

	actual, err := os.ReadFile(filepath.Join(root, item.ConfigPath))
	if err != nil {
		return item
	}

	mcpServers := mcp.FromPresets(m.Presets)
	var mcpValue any
	if !mcpServers.IsEmpty() {
		mcpValue = mcpServers.AsMap()
	}
	expected := translator.Translate(reg, ruleReg.AllRules(), mcpValue)

	result, err := content.Diff(handler, actual, []byte(expected.Instructions))
	if err != nil || len(result.Changes) == 0 {
		return item
	}

	item.Details = diffSummary(result)
	return item
}

func diffSummary(result content.DiffResult) string {
	paths := make([]string, 0, len(result.Changes))
	for _, c := range result.Changes {
		paths = append(paths, string(c.Kind)+" "+c.Path)
	}
	summary := "content drift:"
	for _, p := range paths {
		summary += " " + p + ";"
	}
	summary += fmt.Sprintf(" similarity %.2f", result.Similarity)
	return summary
}
