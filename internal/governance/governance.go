// Package governance implements the cross-cutting checks that look at
// the whole repository at once rather than one tool at a time: lint
// warnings against the live manifest, drift reporting against the
// ledger, and the AGENTS.md interchange format used to move rules
// between repositories.
//
// The donor retrieval pack only carried the CLI call sites for these
// operations (repo-cli/src/commands/governance.rs); the underlying
// repo_core::governance implementation did not survive, so Lint,
// DriftDiff, and the AGENTS.md codec here are built by inference from
// that call site's observable contract and its embedded test
// fixtures, the same situation this project's hook wiring was already
// in.
package governance

import (
	"sort"

	"github.com/wgergely/repoctl/internal/manifest"
)

// WarnLevel is the severity of a single Lint finding.
type WarnLevel string

const (
	LevelInfo    WarnLevel = "info"
	LevelWarning WarnLevel = "warning"
	LevelError   WarnLevel = "error"
)

var levelRank = map[WarnLevel]int{LevelError: 2, LevelWarning: 1, LevelInfo: 0}

// Warning is one Lint finding.
type Warning struct {
	Level   WarnLevel
	Tool    string
	Message string
}

// Lint checks m for consistency issues against the tool slugs,
// rule ids, and preset ids actually known to the repository, and
// reports, in descending severity order:
//   - tools the manifest names that aren't registered (error)
//   - rule ids the manifest names that aren't in the rule registry (error)
//   - duplicate tool/rule ids within the manifest's own selection lists (warning)
//   - presets configured in the manifest with no registered provider (warning)
func Lint(m manifest.Manifest, knownTools, knownRuleIDs, knownPresets []string) []Warning {
	var warnings []Warning

	toolSet := toSet(knownTools)
	for _, slug := range m.Tools {
		if !toolSet[slug] {
			warnings = append(warnings, Warning{Level: LevelError, Tool: slug, Message: "referenced tool is not registered"})
		}
	}

	ruleSet := toSet(knownRuleIDs)
	for _, id := range m.Rules {
		if !ruleSet[id] {
			warnings = append(warnings, Warning{Level: LevelError, Message: "manifest references unknown rule id " + id})
		}
	}

	warnings = append(warnings, duplicateWarnings(m.Tools, "tool")...)
	warnings = append(warnings, duplicateWarnings(m.Rules, "rule")...)

	presetSet := toSet(knownPresets)
	for presetID := range m.Presets {
		if !presetSet[presetID] {
			warnings = append(warnings, Warning{Level: LevelWarning, Message: "configured preset " + presetID + " has no registered provider"})
		}
	}

	sortBySeverity(warnings)
	return warnings
}

func duplicateWarnings(ids []string, kind string) []Warning {
	seen := make(map[string]bool, len(ids))
	var warnings []Warning
	for _, id := range ids {
		if seen[id] {
			warnings = append(warnings, Warning{Level: LevelWarning, Message: "duplicate " + kind + " id " + id + " in manifest"})
			continue
		}
		seen[id] = true
	}
	return warnings
}

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func sortBySeverity(warnings []Warning) {
	sort.SliceStable(warnings, func(i, j int) bool { return levelRank[warnings[i].Level] > levelRank[warnings[j].Level] })
}
