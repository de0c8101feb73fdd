package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
)

var version = "0.1.0"

func main() {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "repoctl",
		Short: "Keep per-tool config files in sync with a declarative manifest",
		Long:  "repoctl renders a repository's rule set into every configured tool's native config file and keeps them from drifting.",
	}
	rootCmd.PersistentFlags().StringVar(&cfg.Root, "root", cfg.Root, "repository root to operate on")
	rootCmd.PersistentFlags().DurationVar(&cfg.LockTimeout, "lock-timeout", cfg.LockTimeout, "how long a write waits for its companion lock")
	rootCmd.PersistentFlags().BoolVar(&cfg.EnableFsync, "fsync", cfg.EnableFsync, "fsync writes before rename")

	rootCmd.AddCommand(
		newInitCmd(cfg),
		newCheckCmd(cfg),
		newSyncCmd(cfg),
		newFixCmd(cfg),
		newStatusCmd(cfg),
		newConfigCmd(cfg),
		newToolCmd(cfg),
		newRuleCmd(cfg),
		newPresetCmd(cfg),
		newRulesCmd(cfg),
		newBranchCmd(cfg),
		newExtensionCmd(cfg),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the repoctl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}
