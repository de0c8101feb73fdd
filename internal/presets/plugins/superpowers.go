package plugins

import (
	"context"

	"github.com/wgergely/repoctl/internal/presets"
)

// superpowersRepo is the git repository the superpowers plugin is
// cloned from.
const superpowersRepo = "https://github.com/obra/superpowers"

// SuperpowersProvider installs and tracks the superpowers Claude Code
// plugin, a fixed, well-known installation repoctl offers as a
// convenience on top of the generic clone-and-toggle Provider.
type SuperpowersProvider struct {
	install pluginInstall
}

// NewSuperpowers returns a SuperpowersProvider at the given version; an
// empty version installs defaultVersion.
func NewSuperpowers(version string) SuperpowersProvider {
	if version == "" {
		version = defaultVersion
	}
	return SuperpowersProvider{install: pluginInstall{
		id:      "claude:superpowers",
		name:    "superpowers",
		repoURL: superpowersRepo,
		version: version,
	}}
}

func (p SuperpowersProvider) ID() string { return p.install.id }

func (p SuperpowersProvider) Check(ctx context.Context, _ presets.Context) (presets.CheckReport, error) {
	return p.install.check(ctx)
}

func (p SuperpowersProvider) Apply(ctx context.Context, _ presets.Context) (presets.ApplyReport, error) {
	return p.install.apply(ctx)
}

// Uninstall disables and removes the superpowers plugin.
func (p SuperpowersProvider) Uninstall(ctx context.Context, _ presets.Context) (presets.ApplyReport, error) {
	return p.install.uninstall(ctx)
}
