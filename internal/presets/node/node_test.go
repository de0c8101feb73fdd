package node

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/wgergely/repoctl/internal/presets"
)

func TestID(t *testing.T) {
	if got := New().ID(); got != "env:node" {
		t.Errorf("ID() = %q, want env:node", got)
	}
}

func TestCheck_MissingPackageJSON(t *testing.T) {
	dir := t.TempDir()
	report, err := New().Check(context.Background(), presets.Context{Root: dir})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.Status != presets.StatusMissing {
		t.Errorf("Status = %v, want Missing", report.Status)
	}
	if report.Action != presets.ActionNone {
		t.Errorf("Action = %v, want None", report.Action)
	}
}

func TestCheck_MissingNodeModules(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	p := New()
	if !p.nodeAvailable(context.Background()) {
		t.Skip("node not available on PATH")
	}
	report, err := p.Check(context.Background(), presets.Context{Root: dir})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if report.Status != presets.StatusMissing || report.Action != presets.ActionInstall {
		t.Errorf("Check() = %+v, want Missing/Install", report)
	}
}

func TestApply_IsDetectionOnly(t *testing.T) {
	report, err := New().Apply(context.Background(), presets.Context{})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !report.IsDetectionOnly() {
		t.Errorf("Apply() status = %v, want DetectionOnly", report.Status)
	}
}
