package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/sync"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report drift between the manifest and each tool's rendered config",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			engine := sync.NewEngine(cfg.Root, w.tools, w.rules, w.ledger, w.manifest)
			report := engine.Check()
			printReport(report)
			if report.Status != sync.StatusHealthy {
				return fmt.Errorf("repository is %s", report.Status)
			}
			return nil
		},
	}
}

func newSyncCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Render every configured tool's config from the current rule set",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			engine := sync.NewEngine(cfg.Root, w.tools, w.rules, w.ledger, w.manifest)
			if err := engine.Sync(); err != nil {
				return err
			}
			return w.saveLedger()
		},
	}
}

func newFixCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Re-render only the tools Check found unhealthy",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			engine := sync.NewEngine(cfg.Root, w.tools, w.rules, w.ledger, w.manifest)
			if err := engine.Fix(); err != nil {
				return err
			}
			return w.saveLedger()
		},
	}
}

func printReport(report sync.Report) {
	fmt.Printf("status: %s\n", report.Status)
	for _, item := range report.Missing {
		fmt.Printf("  missing  %-20s %s (%s)\n", item.Tool, item.File, item.Description)
	}
	for _, item := range report.Drifted {
		fmt.Printf("  drifted  %-20s %s (%s)\n", item.Tool, item.File, item.Description)
	}
	for _, msg := range report.Messages {
		fmt.Printf("  broken   %s\n", msg)
	}
}
