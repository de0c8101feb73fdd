package plugins

import (
	"encoding/json"
	"os"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/rerrors"
)

// enablePlugin marks pluginKey enabled in the "enabledPlugins" object of
// the JSON settings file at path, creating the file and its parent
// directory if neither exists yet. Unrelated keys in the file are
// preserved.
func enablePlugin(path, pluginKey string) error {
	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	enabled, _ := settings["enabledPlugins"].(map[string]any)
	if enabled == nil {
		enabled = make(map[string]any)
	}
	enabled[pluginKey] = true
	settings["enabledPlugins"] = enabled

	return writeSettings(path, settings)
}

// disablePlugin removes pluginKey from "enabledPlugins". A missing
// settings file is not an error: there is nothing to disable.
func disablePlugin(path, pluginKey string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	settings, err := readSettings(path)
	if err != nil {
		return err
	}
	if enabled, ok := settings["enabledPlugins"].(map[string]any); ok {
		delete(enabled, pluginKey)
		settings["enabledPlugins"] = enabled
	}
	return writeSettings(path, settings)
}

// isEnabled reports whether pluginKey is set to true in the settings
// file's "enabledPlugins" object. Any read or parse failure is treated
// as "not enabled" rather than propagated, matching a best-effort status
// check rather than a mutation.
func isEnabled(path, pluginKey string) bool {
	settings, err := readSettings(path)
	if err != nil {
		return false
	}
	enabled, ok := settings["enabledPlugins"].(map[string]any)
	if !ok {
		return false
	}
	v, _ := enabled[pluginKey].(bool)
	return v
}

func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, rerrors.WithPath(rerrors.KindIO, "failed to read settings", path, err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, rerrors.WithPath(rerrors.KindParse, "invalid JSON", path, err)
	}
	if settings == nil {
		settings = make(map[string]any)
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]any) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return rerrors.Wrap(rerrors.KindIO, "failed to serialize settings", err)
	}
	return atomicio.Write(path, data, atomicio.DefaultConfig())
}
