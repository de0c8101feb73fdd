package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/layout"
	"github.com/wgergely/repoctl/internal/sync"
)

// newStatusCmd reports the repository's layout and sync health without
// treating drift as a command failure - unlike check, which exits
// non-zero so it composes in scripts.
func newStatusCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize workspace layout and sync health",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}

			if l, err := layout.Detect(cfg.Root); err == nil {
				fmt.Printf("layout: %s (%s)\n", l.Mode(), l.Root())
			} else {
				fmt.Printf("layout: undetected (%v)\n", err)
			}

			engine := sync.NewEngine(cfg.Root, w.tools, w.rules, w.ledger, w.manifest)
			printReport(engine.Check())
			return nil
		},
	}
}
