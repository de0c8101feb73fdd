package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/constants"
	"github.com/wgergely/repoctl/internal/manifest"
)

func newInitCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty manifest and rule/ledger stores under .repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Join(cfg.Root, constants.RepositoryConfigDir)
			if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
				return err
			}

			mPath := manifestPath(cfg.Root)
			if _, err := os.Stat(mPath); os.IsNotExist(err) {
				if err := manifest.SaveWithConfig(mPath, manifest.Empty(), cfg.AtomicioConfig()); err != nil {
					return err
				}
			}

			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			if err := w.rules.Save(); err != nil {
				return err
			}
			if err := w.saveLedger(); err != nil {
				return err
			}

			fmt.Printf("initialized repository config under %s\n", dir)
			return nil
		},
	}
}
