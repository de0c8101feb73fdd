// Package python implements the uv-backed Python environment preset
// provider: it creates and checks a project-local virtual environment
// using the uv package manager (https://docs.astral.sh/uv/).
package python

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/wgergely/repoctl/internal/platform"
	"github.com/wgergely/repoctl/internal/presets"
)

const checkTimeout = 10 * time.Second

// UvProvider manages a project's Python virtual environment via uv.
type UvProvider struct{}

// New returns a UvProvider.
func New() UvProvider { return UvProvider{} }

func (UvProvider) ID() string { return "env:python" }

func (p UvProvider) Check(ctx context.Context, pc presets.Context) (presets.CheckReport, error) {
	if !p.uvAvailable(ctx) {
		return presets.Broken("uv not found. Install uv: https://docs.astral.sh/uv/"), nil
	}
	if !p.venvExists(pc) {
		return presets.Missing("Virtual environment not found"), nil
	}
	return presets.Healthy(), nil
}

func (p UvProvider) Apply(ctx context.Context, pc presets.Context) (presets.ApplyReport, error) {
	args := []string{"venv"}
	pythonArg, forward := resolvePythonArg(pc.PythonVersion)
	if forward {
		args = append(args, "--python", pythonArg)
	}
	args = append(args, pc.VenvPath)

	cmd := exec.CommandContext(ctx, "uv", args...)
	cmd.Dir = pc.Root
	if err := cmd.Run(); err != nil {
		if forward {
			return presets.ApplyFailureReport(fmt.Sprintf("Failed to create venv with Python %s", pythonArg)), nil
		}
		return presets.ApplyFailureReport("Failed to create venv (delegated Python version to uv)"), nil
	}

	return presets.ApplySuccessReport(fmt.Sprintf("Created virtual environment at %s", pc.VenvPath)), nil
}

func (UvProvider) uvAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	return exec.CommandContext(ctx, "uv", "--version").Run() == nil
}

func (UvProvider) venvExists(pc presets.Context) bool {
	bin := "bin"
	python := "python"
	if platform.IsWindows() {
		bin, python = "Scripts", "python.exe"
	}
	_, err := os.Stat(filepath.Join(pc.VenvPath, bin, python))
	return err == nil
}

// resolvePythonArg decides whether to pass --python VERSION to uv.
//
// A single-bound constraint (">=X.Y", "==X.Y", bare "X.Y") is forwarded
// directly. A range constraint (">=X,<Y") is not: uv falls back to a
// .python-version file in the working directory, or its own default, which
// is almost always what a multi-bound range is trying to express anyway.
func resolvePythonArg(version string) (string, bool) {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return "", false
	}
	count := 0
	for _, part := range strings.Split(trimmed, ",") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count > 1 {
		return "", false
	}
	return trimmed, true
}
