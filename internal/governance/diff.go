package governance

import (
	"github.com/wgergely/repoctl/internal/ledger"
	"github.com/wgergely/repoctl/internal/manifest"
	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/sync"
	"github.com/wgergely/repoctl/internal/tools"
)

// DriftType categorizes one drift found by DriftDiff.
type DriftType string

const (
	DriftModified DriftType = "modified"
	DriftMissing  DriftType = "missing"
	DriftExtra    DriftType = "extra"
)

// Drift is one discrepancy between the manifest-implied expected
// state and what's actually on disk or recorded in the ledger.
type Drift struct {
	Tool       string
	ConfigPath string
	Type       DriftType
	Details    string
}

// DriftDiff compares the on-disk config files against what the
// manifest and rule registry currently say they should contain (via
// the sync engine's Check), and additionally flags ledger
// projections left over from tools the manifest no longer names -
// "extra" drift the engine's own Check never surfaces, since it only
// ever looks at the manifest's *current* tool selection.
func DriftDiff(root string, m manifest.Manifest, toolReg *tools.Registry, ruleReg *rules.Registry, led *ledger.Ledger) []Drift {
	engine := sync.NewEngine(root, toolReg, ruleReg, led, m)
	report := engine.Check()

	var drifts []Drift
	for _, item := range report.Missing {
		drifts = append(drifts, Drift{Tool: item.Tool, ConfigPath: item.File, Type: DriftMissing, Details: item.Description})
	}
	for _, item := range report.Drifted {
		drift := Drift{Tool: item.Tool, ConfigPath: item.File, Type: DriftModified, Details: item.Description}
		drift = describeModified(root, drift, m, toolReg, ruleReg)
		drifts = append(drifts, drift)
	}
	for _, msg := range report.Messages {
		drifts = append(drifts, Drift{Type: DriftModified, Details: msg})
	}

	drifts = append(drifts, extraProjections(m, led)...)
	return drifts
}

// extraProjections finds ledger projections for tools the manifest no
// longer names - configuration that was written by a previous sync
// but that nothing would currently regenerate or clean up.
func extraProjections(m manifest.Manifest, led *ledger.Ledger) []Drift {
	if led == nil {
		return nil
	}

	active := make(map[string]bool, len(m.Tools))
	for _, slug := range m.Tools {
		active[slug] = true
	}

	var drifts []Drift
	for _, intent := range led.Intents {
		for _, p := range intent.Projections {
			if !active[p.Tool] {
				drifts = append(drifts, Drift{Tool: p.Tool, ConfigPath: p.File, Type: DriftExtra, Details: "tool no longer named by manifest"})
			}
		}
	}
	return drifts
}
