package plugins

import (
	"os"
	"path/filepath"
)

// defaultVersion is the version tag installed when a provider is not
// given one explicitly.
const defaultVersion = "latest"

// marketplaceName identifies the plugin marketplace a plugin's enable
// key is qualified against, e.g. "superpowers@obra-marketplace".
const marketplaceName = "obra-marketplace"

// claudeSettingsPath returns the path to Claude's user-level settings
// file, or "" if the home directory cannot be determined.
func claudeSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "settings.json")
}

// pluginInstallDir returns where a plugin named name at the given
// version is installed under Claude's plugin cache, or "" if the home
// directory cannot be determined.
func pluginInstallDir(name, version string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "plugins", name, version)
}

func pluginJSONPath(installDir string) string {
	return filepath.Join(installDir, ".claude-plugin", "plugin.json")
}
