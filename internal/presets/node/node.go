// Package node implements a detection-only preset provider for Node.js
// projects: it reports whether package.json, node_modules, and the node
// binary are present, but never installs anything itself.
package node

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/wgergely/repoctl/internal/presets"
)

const checkTimeout = 10 * time.Second

// Provider detects a Node.js environment without managing it.
type Provider struct{}

// New returns a Provider.
func New() Provider { return Provider{} }

func (Provider) ID() string { return "env:node" }

func (p Provider) Check(ctx context.Context, pc presets.Context) (presets.CheckReport, error) {
	var details []string

	hasPackageJSON := pathExists(filepath.Join(pc.Root, "package.json"))
	if !hasPackageJSON {
		details = append(details, "package.json not found")
	}
	hasNodeModules := pathExists(filepath.Join(pc.Root, "node_modules"))
	if !hasNodeModules {
		details = append(details, "node_modules not found")
	}
	nodeAvailable := p.nodeAvailable(ctx)
	if !nodeAvailable {
		details = append(details, "node not found on PATH")
	}

	if !hasPackageJSON {
		return presets.CheckReport{Status: presets.StatusMissing, Details: details, Action: presets.ActionNone}, nil
	}
	if !nodeAvailable {
		return presets.Broken(strings.Join(details, "; ")), nil
	}
	if !hasNodeModules {
		return presets.CheckReport{
			Status:  presets.StatusMissing,
			Details: []string{"Dependencies not installed. Run npm install or yarn install."},
			Action:  presets.ActionInstall,
		}, nil
	}
	return presets.Healthy(), nil
}

// Apply is detection-only: Node.js environments are managed by the
// project's own package manager, not by repoctl.
func (Provider) Apply(context.Context, presets.Context) (presets.ApplyReport, error) {
	return presets.ApplyDetectionOnlyReport("Node environment detection complete. This provider is detection-only."), nil
}

func (Provider) nodeAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return exec.CommandContext(ctx, "node", "--version").Run() == nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

