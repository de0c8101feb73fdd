package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/wgergely/repoctl/internal/ledger"
	"github.com/wgergely/repoctl/internal/manifest"
	"github.com/wgergely/repoctl/internal/mcp"
	"github.com/wgergely/repoctl/internal/pathutil"
	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
	"github.com/wgergely/repoctl/internal/translator"
	"github.com/wgergely/repoctl/internal/writer"
)

// Engine reconciles the tools a manifest names against the rule
// registry's current content, detecting independent per-tool signals
// the same way the donor environment detector folds volume/container/
// symlink checks into one EnvironmentState, then merging them into a
// single Report via the worst-status-wins rule.
type Engine struct {
	Root     string
	Tools    *tools.Registry
	Rules    *rules.Registry
	Ledger   *ledger.Ledger
	Manifest manifest.Manifest
}

// NewEngine builds an Engine rooted at root.
func NewEngine(root string, toolReg *tools.Registry, ruleReg *rules.Registry, led *ledger.Ledger, m manifest.Manifest) *Engine {
	return &Engine{Root: root, Tools: toolReg, Rules: ruleReg, Ledger: led, Manifest: m}
}

// activeTools resolves the manifest's tool slugs into registrations,
// skipping any slug the registry doesn't recognize.
func (e *Engine) activeTools() []tools.Registration {
	var out []tools.Registration
	for _, slug := range e.Manifest.Tools {
		if reg, ok := e.Tools.Get(slug); ok {
			out = append(out, reg)
		}
	}
	return out
}

// configRelPath returns reg's declared config path normalized to a
// forward-slash, separator-collapsed form before it's joined under the
// repository root - a custom tool definition loaded from a TOML file
// authored on Windows may declare it with backslashes.
func configRelPath(reg tools.Registration) string {
	return pathutil.Normalize(reg.Definition.Integration.ConfigPath).ToNative()
}

// render produces the translator.Content a tool should currently have,
// from the engine's rule set and declared MCP servers.
func (e *Engine) render(reg tools.Registration) translator.Content {
	mcpServers := mcp.FromPresets(e.Manifest.Presets)
	var mcpValue any
	if !mcpServers.IsEmpty() {
		mcpValue = mcpServers.AsMap()
	}
	return translator.Translate(reg, e.Rules.AllRules(), mcpValue)
}

// Check compares every active tool's current config file against what
// it should contain, without writing anything.
func (e *Engine) Check() Report {
	report := Healthy()

	for _, reg := range e.activeTools() {
		content := e.render(reg)
		if content.IsEmpty() {
			continue
		}

		path := filepath.Join(e.Root, configRelPath(reg))
		item := DriftItem{Tool: reg.Slug, File: configRelPath(reg)}

		switch {
		case reg.SupportsRulesDirectory():
			if info, err := os.Stat(path); err != nil || !info.IsDir() {
				item.Description = "rules directory missing"
				report = report.Merge(WithMissing([]DriftItem{item}))
			}
		case reg.Definition.Integration.ConfigType == tools.ConfigMarkdown:
			managed, exists := writer.ReadManagedSection(path)
			report = report.Merge(e.checkRendered(item, exists, managed == content.Instructions))
		case reg.Definition.Integration.ConfigType == tools.ConfigJSON:
			var actual any
			var exists bool
			if keys := reg.Definition.SchemaKeys; keys != nil && keys.InstructionKey != "" {
				actual, exists = writer.ReadJSONKey(path, keys.InstructionKey)
			} else {
				_, statErr := os.Stat(path)
				exists = statErr == nil
				actual = content.Instructions
			}
			report = report.Merge(e.checkRendered(item, exists, actual == content.Instructions))
		default:
			data, err := os.ReadFile(path)
			report = report.Merge(e.checkRendered(item, err == nil, string(data) == content.Instructions))
		}
	}

	return report
}

// checkRendered folds one tool's (exists, matches) signal into a
// Report, the same shape detector.go's per-signal checks get folded
// into one EnvironmentState.
func (e *Engine) checkRendered(item DriftItem, exists, matches bool) Report {
	switch {
	case !exists:
		item.Description = "config file missing"
		return WithMissing([]DriftItem{item})
	case !matches:
		item.Description = "managed content has drifted"
		return WithDrifted([]DriftItem{item})
	default:
		return Healthy()
	}
}

// Sync writes every active tool's config up to date and records the
// resulting projections in the ledger.
func (e *Engine) Sync() error {
	for _, reg := range e.activeTools() {
		content := e.render(reg)
		if content.IsEmpty() {
			continue
		}

		path := filepath.Join(e.Root, configRelPath(reg))
		if reg.SupportsRulesDirectory() {
			content = content.WithData("rules", ruleFilesFor(e.Rules.AllRules()))
		}

		w := writer.Select(path)
		if err := w.Write(path, content, reg.Definition.SchemaKeys); err != nil {
			return err
		}

		e.recordProjection(reg, path, content)
	}

	return nil
}

// Fix re-syncs only the tools Check currently reports as unhealthy,
// leaving already-healthy tools untouched.
func (e *Engine) Fix() error {
	report := e.Check()
	if report.IsHealthy() {
		return nil
	}

	unhealthy := make(map[string]bool, len(report.Missing)+len(report.Drifted))
	for _, item := range report.Missing {
		unhealthy[item.Tool] = true
	}
	for _, item := range report.Drifted {
		unhealthy[item.Tool] = true
	}

	for _, reg := range e.activeTools() {
		if !unhealthy[reg.Slug] {
			continue
		}
		content := e.render(reg)
		if content.IsEmpty() {
			continue
		}

		path := filepath.Join(e.Root, configRelPath(reg))
		if reg.SupportsRulesDirectory() {
			content = content.WithData("rules", ruleFilesFor(e.Rules.AllRules()))
		}

		w := writer.Select(path)
		if err := w.Write(path, content, reg.Definition.SchemaKeys); err != nil {
			return err
		}
		e.recordProjection(reg, path, content)
	}
	return nil
}

// recordProjection updates the ledger with a FileManaged projection
// for reg's config file, replacing any prior projection for the same
// tool/file pair.
func (e *Engine) recordProjection(reg tools.Registration, path string, content translator.Content) {
	if e.Ledger == nil {
		return
	}

	relFile := configRelPath(reg)
	checksum := checksumOf(content.Instructions)

	for idx := range e.Ledger.Intents {
		intent := &e.Ledger.Intents[idx]
		if intent.ID != intentIDFor(reg.Slug) {
			continue
		}
		intent.RemoveProjection(reg.Slug, relFile)
		intent.AddProjection(ledger.FileManagedProjection(reg.Slug, relFile, checksum))
		return
	}

	intent := ledger.NewIntent(intentIDFor(reg.Slug), nil)
	intent.AddProjection(ledger.FileManagedProjection(reg.Slug, relFile, checksum))
	e.Ledger.AddIntent(intent)
}

func intentIDFor(toolSlug string) string {
	return "tool:" + toolSlug
}

func checksumOf(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// ruleFilesFor converts the rule registry's rules into the
// writer.RuleFile values a directory-based writer expects, sorted
// deterministically.
func ruleFilesFor(ruleSet []rules.Rule) []writer.RuleFile {
	files := make([]writer.RuleFile, 0, len(ruleSet))
	for _, r := range ruleSet {
		files = append(files, writer.RuleFile{ID: r.ID, Content: r.Content})
	}
	return writer.SortRuleFiles(files)
}
