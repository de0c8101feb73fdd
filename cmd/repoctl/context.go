// Command repoctl drives the repository config-sync engine from the
// shell: inspect or change workspace layout, keep tool config in sync
// with the manifest and rule registry, and run governance checks
// against it.
package main

import (
	"errors"
	"path/filepath"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/ledger"
	"github.com/wgergely/repoctl/internal/manifest"
	"github.com/wgergely/repoctl/internal/presets"
	"github.com/wgergely/repoctl/internal/presets/node"
	"github.com/wgergely/repoctl/internal/presets/plugins"
	"github.com/wgergely/repoctl/internal/presets/python"
	"github.com/wgergely/repoctl/internal/presets/rust"
	"github.com/wgergely/repoctl/internal/rerrors"
	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
)

// workspace bundles everything a command needs once it has resolved
// the repository root: the manifest, the rule registry, the ledger,
// and the tool/preset registries built-ins are pre-populated into.
type workspace struct {
	cfg      *config.Config
	manifest manifest.Manifest
	rules    *rules.Registry
	ledger   *ledger.Ledger
	tools    *tools.Registry
	presets  *presets.Registry

	manifestPath string
	ledgerPath   string
}

func manifestPath(root string) string { return filepath.Join(root, ".repository", "config.toml") }
func rulesPath(root string) string    { return filepath.Join(root, ".repository", "rules.toml") }
func ledgerPath(root string) string   { return filepath.Join(root, ".repository", "ledger.toml") }

// loadWorkspace resolves cfg.Root's manifest, rule registry, and ledger
// (creating each fresh if it doesn't exist yet) and builds the tool and
// preset registries every sync/governance command operates against.
func loadWorkspace(cfg *config.Config) (*workspace, error) {
	mPath := manifestPath(cfg.Root)
	m, err := manifest.Load(mPath)
	if err != nil {
		if !errors.Is(err, rerrors.New(rerrors.KindIO, "")) {
			return nil, err
		}
		m = manifest.Empty()
	}

	ruleReg, err := rules.LoadOrCreate(rulesPath(cfg.Root))
	if err != nil {
		return nil, err
	}
	ruleReg.SetSaveConfig(cfg.AtomicioConfig())

	led, err := ledger.LoadOrCreate(ledgerPath(cfg.Root))
	if err != nil {
		return nil, err
	}

	toolReg := tools.NewRegistry()
	if err := toolReg.LoadCustomDir(filepath.Join(cfg.Root, ".repository", "tools")); err != nil {
		return nil, err
	}

	presetReg := presets.NewRegistry()
	presetReg.Register(python.New())
	presetReg.Register(node.New())
	presetReg.Register(rust.New())
	presetReg.Register(plugins.NewSuperpowers(""))
	if claudePlugins, ok := pluginConfig(m, "claude:plugins"); ok {
		presetReg.Register(plugins.New(claudePlugins.name, claudePlugins.repoURL, claudePlugins.version))
	}

	return &workspace{
		cfg:          cfg,
		manifest:     m,
		rules:        ruleReg,
		ledger:       led,
		tools:        toolReg,
		presets:      presetReg,
		manifestPath: mPath,
		ledgerPath:   ledgerPath(cfg.Root),
	}, nil
}

// pluginConfig reads a "claude:plugins"-style preset declaration's
// name/source/version out of the manifest's untyped preset table, the
// same way internal/extensions.ParseConfig pulls fixed keys out of a
// decoded TOML table. A declaration missing "name" or "source" is
// treated as absent, since plugins.New requires both.
func pluginConfig(m manifest.Manifest, key string) (struct{ name, repoURL, version string }, bool) {
	raw, ok := m.Presets[key]
	if !ok {
		return struct{ name, repoURL, version string }{}, false
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return struct{ name, repoURL, version string }{}, false
	}
	name, _ := table["name"].(string)
	repoURL, _ := table["source"].(string)
	if name == "" || repoURL == "" {
		return struct{ name, repoURL, version string }{}, false
	}
	version, _ := table["version"].(string)
	return struct{ name, repoURL, version string }{name, repoURL, version}, true
}

// saveLedger persists the ledger under the workspace's configured
// atomicio settings, rather than atomicio's package defaults.
func (w *workspace) saveLedger() error {
	return w.ledger.SaveWithConfig(w.ledgerPath, w.cfg.AtomicioConfig())
}

// saveManifest persists the manifest under the workspace's configured
// atomicio settings.
func (w *workspace) saveManifest() error {
	return manifest.SaveWithConfig(w.manifestPath, w.manifest, w.cfg.AtomicioConfig())
}
