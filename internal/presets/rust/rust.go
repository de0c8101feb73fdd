// Package rust implements a detection-only preset provider for Rust
// projects: it reports whether Cargo.toml is present and rustc is on
// PATH, but performs no installation of its own (that's rustup's job).
package rust

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/wgergely/repoctl/internal/presets"
)

const checkTimeout = 10 * time.Second

// Provider detects a Rust toolchain without managing it.
type Provider struct{}

// New returns a Provider.
func New() Provider { return Provider{} }

func (Provider) ID() string { return "env:rust" }

func (p Provider) Check(ctx context.Context, pc presets.Context) (presets.CheckReport, error) {
	if !p.cargoTomlExists(pc) {
		return presets.CheckReport{
			Status:  presets.StatusMissing,
			Details: []string{"Cargo.toml not found. This may not be a Rust project."},
			Action:  presets.ActionNone,
		}, nil
	}

	if !p.rustcAvailable(ctx) {
		return presets.CheckReport{
			Status: presets.StatusBroken,
			Details: []string{
				"Cargo.toml found but rustc not available on PATH.",
				"Install Rust via https://rustup.rs to use this project.",
			},
			Action: presets.ActionInstall,
		}, nil
	}

	return presets.Healthy(), nil
}

// Apply is detection-only: Rust toolchains are managed by rustup, not by
// repoctl.
func (Provider) Apply(context.Context, presets.Context) (presets.ApplyReport, error) {
	return presets.ApplyDetectionOnlyReport(
		"Rust environment provider is detection-only.",
		"No actions taken. Use rustup to manage Rust installations.",
	), nil
}

func (Provider) cargoTomlExists(pc presets.Context) bool {
	_, err := os.Stat(filepath.Join(pc.Root, "Cargo.toml"))
	return err == nil
}

func (Provider) rustcAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return exec.CommandContext(ctx, "rustc", "--version").Run() == nil
}
