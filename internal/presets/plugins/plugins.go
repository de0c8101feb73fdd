// Package plugins implements preset providers for Claude Code plugins
// that are installed by cloning a git repository into Claude's plugin
// cache and toggling them on in Claude's user settings.json.
package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wgergely/repoctl/internal/presets"
)

// pluginInstall is the check/apply/uninstall logic shared by every
// clone-and-toggle plugin; Provider and SuperpowersProvider each wrap
// one configured for their own repo and name.
type pluginInstall struct {
	id      string
	name    string
	repoURL string
	version string
}

func (p pluginInstall) enableKey() string {
	return fmt.Sprintf("%s@%s", p.name, marketplaceName)
}

func (p pluginInstall) check(ctx context.Context) (presets.CheckReport, error) {
	installDir := pluginInstallDir(p.name, p.version)
	if installDir == "" {
		return presets.Broken("Cannot determine home directory"), nil
	}

	pluginJSON := pluginJSONPath(installDir)
	if _, err := os.Stat(pluginJSON); os.IsNotExist(err) {
		return presets.Missing(fmt.Sprintf("Plugin %s not installed at %s", p.version, installDir)), nil
	}

	data, err := os.ReadFile(pluginJSON)
	if err != nil {
		return presets.Drifted(fmt.Sprintf("Cannot read plugin.json: %s", err)), nil
	}
	if !json.Valid(data) {
		return presets.Drifted("plugin.json is corrupted"), nil
	}

	settingsPath := claudeSettingsPath()
	if settingsPath == "" {
		return presets.Healthy(), nil
	}
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return presets.Healthy(), nil
	}
	if !isEnabled(settingsPath, p.enableKey()) {
		return presets.Drifted("Plugin is installed but disabled"), nil
	}
	return presets.Healthy(), nil
}

func (p pluginInstall) apply(ctx context.Context) (presets.ApplyReport, error) {
	installDir := pluginInstallDir(p.name, p.version)
	if installDir == "" {
		return presets.ApplyFailureReport("Cannot determine home directory"), nil
	}

	var actions []string
	if _, err := os.Stat(installDir); os.IsNotExist(err) {
		actions = append(actions, fmt.Sprintf("Cloning plugin %s from %s", p.version, p.repoURL))
		if err := cloneRepo(ctx, p.repoURL, installDir, p.version); err != nil {
			return presets.ApplyFailureReport(err.Error()), nil
		}
		actions = append(actions, fmt.Sprintf("Installed to %s", installDir))
	} else {
		actions = append(actions, fmt.Sprintf("Plugin %s already installed", p.version))
	}

	if settingsPath := claudeSettingsPath(); settingsPath != "" {
		if !isEnabled(settingsPath, p.enableKey()) {
			if err := enablePlugin(settingsPath, p.enableKey()); err != nil {
				return presets.ApplyFailureReport(err.Error()), nil
			}
			actions = append(actions, "Enabled plugin in Claude settings")
		}
	}

	return presets.ApplySuccessReport(actions...), nil
}

func (p pluginInstall) uninstall(ctx context.Context) (presets.ApplyReport, error) {
	var actions []string

	if settingsPath := claudeSettingsPath(); settingsPath != "" {
		if isEnabled(settingsPath, p.enableKey()) {
			if err := disablePlugin(settingsPath, p.enableKey()); err != nil {
				return presets.ApplyFailureReport(err.Error()), nil
			}
			actions = append(actions, "Disabled plugin in Claude settings")
		}
	}

	installDir := pluginInstallDir(p.name, p.version)
	if installDir != "" {
		if _, err := os.Stat(installDir); err == nil {
			if err := os.RemoveAll(installDir); err != nil {
				return presets.ApplyFailureReport(fmt.Sprintf("Failed to remove %s: %s", installDir, err)), nil
			}
			actions = append(actions, fmt.Sprintf("Removed %s", installDir))
		}
	}

	return presets.ApplySuccessReport(actions...), nil
}

// Provider installs and tracks a Claude Code plugin cloned from the
// repository it is given.
type Provider struct {
	install pluginInstall
}

// New returns a Provider for the given plugin repository and version;
// an empty version installs defaultVersion.
func New(name, repoURL, version string) Provider {
	if version == "" {
		version = defaultVersion
	}
	return Provider{install: pluginInstall{id: "claude:plugins", name: name, repoURL: repoURL, version: version}}
}

func (p Provider) ID() string { return p.install.id }

func (p Provider) Check(ctx context.Context, _ presets.Context) (presets.CheckReport, error) {
	return p.install.check(ctx)
}

func (p Provider) Apply(ctx context.Context, _ presets.Context) (presets.ApplyReport, error) {
	return p.install.apply(ctx)
}

// Uninstall disables and removes the plugin.
func (p Provider) Uninstall(ctx context.Context, _ presets.Context) (presets.ApplyReport, error) {
	return p.install.uninstall(ctx)
}
