// Package manifest implements the declarative config.toml a repository
// carries: which mode it runs in, which presets are configured, and
// which tools and rules apply. Multiple manifests - global, org, repo,
// local - are parsed independently and merged into one resolved
// configuration, with the more specific source winning.
package manifest

import (
	"github.com/wgergely/repoctl/internal/atomicio"
)

const defaultMode = "standard"

// Core holds repository-wide settings.
type Core struct {
	// Mode is "standard" or "worktree".
	Mode string `toml:"mode"`
}

func defaultCore() Core { return Core{Mode: defaultMode} }

// Manifest is a single parsed config.toml. Presets are keyed
// "type:name" (e.g. "env:python", "claude:plugins") and hold arbitrary
// per-preset settings, since each preset provider owns its own schema.
// Extensions is keyed by extension name and holds each declaration's
// raw TOML table, decoded on demand with internal/extensions.ParseConfig
// since an extension may carry its own extra settings beyond source/ref.
type Manifest struct {
	Core       Core                      `toml:"core"`
	Presets    map[string]any            `toml:"presets"`
	Tools      []string                  `toml:"tools"`
	Rules      []string                  `toml:"rules"`
	Hooks      []HookConfig              `toml:"hooks,omitempty"`
	Extensions map[string]map[string]any `toml:"extensions,omitempty"`
}

// Empty returns a manifest equivalent to parsing an empty file.
func Empty() Manifest {
	return Manifest{Core: defaultCore(), Presets: make(map[string]any), Extensions: make(map[string]map[string]any)}
}

// Load parses the manifest at path. A manifest with defaulted fields is
// returned even when the file only sets a subset of the schema, since
// BurntSushi/toml leaves zero-value Go fields alone on a partial decode.
func Load(path string) (Manifest, error) {
	m, err := atomicio.Load[Manifest](path)
	if err != nil {
		return Manifest{}, err
	}
	if m.Core.Mode == "" {
		m.Core.Mode = defaultMode
	}
	if m.Presets == nil {
		m.Presets = make(map[string]any)
	}
	if m.Extensions == nil {
		m.Extensions = make(map[string]map[string]any)
	}
	return m, nil
}

// Save writes m to path using atomicio's default durability settings.
func Save(path string, m Manifest) error {
	return SaveWithConfig(path, m, atomicio.DefaultConfig())
}

// SaveWithConfig writes m to path under the given atomicio.Config,
// letting a caller apply CLI-wide lock/fsync settings (internal/config)
// instead of the package defaults.
func SaveWithConfig(path string, m Manifest, cfg atomicio.Config) error {
	return atomicio.Save(path, m, cfg)
}

// Merge folds other into m, with other taking precedence: a non-default
// core mode overrides, preset maps are deep-merged key by key, and
// tools/rules are extended with other's unique entries in order.
func (m *Manifest) Merge(other Manifest) {
	if other.Core.Mode != "" && other.Core.Mode != defaultMode {
		m.Core.Mode = other.Core.Mode
	}

	if m.Presets == nil {
		m.Presets = make(map[string]any)
	}
	for key, otherValue := range other.Presets {
		if baseValue, ok := m.Presets[key]; ok {
			m.Presets[key] = deepMerge(baseValue, otherValue)
		} else {
			m.Presets[key] = otherValue
		}
	}

	m.Tools = appendUnique(m.Tools, other.Tools)
	m.Rules = appendUnique(m.Rules, other.Rules)
	m.Hooks = append(m.Hooks, other.Hooks...)

	if len(other.Extensions) > 0 {
		if m.Extensions == nil {
			m.Extensions = make(map[string]map[string]any, len(other.Extensions))
		}
		for name, decl := range other.Extensions {
			m.Extensions[name] = decl
		}
	}
}

// deepMerge recursively merges two decoded TOML values. When both sides
// are maps they're merged key by key with other's value winning on
// conflict; any other combination of types is a full replacement.
func deepMerge(base, other any) any {
	baseMap, baseOK := base.(map[string]any)
	otherMap, otherOK := other.(map[string]any)
	if !baseOK || !otherOK {
		return other
	}

	merged := make(map[string]any, len(baseMap))
	for k, v := range baseMap {
		merged[k] = v
	}
	for k, otherVal := range otherMap {
		if baseVal, ok := merged[k]; ok {
			merged[k] = deepMerge(baseVal, otherVal)
		} else {
			merged[k] = otherVal
		}
	}
	return merged
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}
	for _, v := range extra {
		if !seen[v] {
			base = append(base, v)
			seen[v] = true
		}
	}
	return base
}
