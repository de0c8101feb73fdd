package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/governance"
)

func newRulesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Lint, diff, and interchange the rule registry",
	}
	cmd.AddCommand(
		newRulesLintCmd(cfg),
		newRulesDiffCmd(cfg),
		newRulesExportCmd(cfg),
		newRulesImportCmd(cfg),
	)
	return cmd
}

func newRulesLintCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Flag unknown tools, rule ids, and presets named by the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}

			var ruleIDs []string
			for _, r := range w.rules.AllRules() {
				ruleIDs = append(ruleIDs, r.ID)
			}
			var toolSlugs []string
			for _, t := range w.tools.All() {
				toolSlugs = append(toolSlugs, t.Slug)
			}

			warnings := governance.Lint(w.manifest, toolSlugs, ruleIDs, w.presets.IDs())
			for _, warn := range warnings {
				fmt.Printf("[%s] %s: %s\n", warn.Level, warn.Tool, warn.Message)
			}
			for _, warn := range warnings {
				if warn.Level == governance.LevelError {
					return fmt.Errorf("lint found %d finding(s)", len(warnings))
				}
			}
			return nil
		},
	}
}

func newRulesDiffCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show drift between the manifest's expected state and what's on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			drifts := governance.DriftDiff(cfg.Root, w.manifest, w.tools, w.rules, w.ledger)
			for _, d := range drifts {
				fmt.Printf("%-10s %-20s %s: %s\n", d.Type, d.Tool, d.ConfigPath, d.Details)
			}
			if len(drifts) > 0 {
				return fmt.Errorf("found %d drift(s)", len(drifts))
			}
			return nil
		},
	}
}

func newRulesExportCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every rule to an AGENTS.md-style interchange document",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			doc := governance.ExportAgentsMD(w.rules.AllRules())
			if out == "" {
				fmt.Print(doc)
				return nil
			}
			return os.WriteFile(out, []byte(doc), 0o644)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write (defaults to stdout)")
	return cmd
}

func newRulesImportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Load rules from an AGENTS.md-style interchange document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, imported := range governance.ImportAgentsMD(string(data)) {
				if existing, ok := w.rules.GetRuleByID(imported.ID); ok {
					if err := w.rules.UpdateRule(existing.UUID, imported.Content); err != nil {
						return err
					}
					continue
				}
				if _, err := w.rules.AddRule(imported.ID, imported.Content, nil); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
