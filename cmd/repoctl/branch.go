package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/layout"
)

func newBranchCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Inspect and manage branches across Standard, Worktrees, and Container layouts",
	}
	cmd.AddCommand(
		newBranchListCmd(cfg),
		newBranchAddCmd(cfg),
		newBranchRemoveCmd(cfg),
		newBranchSwitchCmd(cfg),
		newBranchRenameCmd(cfg),
	)
	return cmd
}

func newBranchListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every branch and the directory it's checked out in",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Detect(cfg.Root)
			if err != nil {
				return err
			}
			branches, err := l.ListBranches(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("layout: %s\n", l.Mode())
			for _, b := range branches {
				marker := " "
				if b.Current {
					marker = "*"
				}
				fmt.Printf("%s %-30s %s\n", marker, b.Name, b.Path)
			}
			return nil
		},
	}
}

func newBranchAddCmd(cfg *config.Config) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new branch (and its worktree/container directory, where applicable)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Detect(cfg.Root)
			if err != nil {
				return err
			}
			path, err := l.CreateBranch(cmd.Context(), args[0], base)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "branch to base the new branch on (defaults to the current branch)")
	return cmd
}

func newBranchRemoveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a branch and prune its directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Detect(cfg.Root)
			if err != nil {
				return err
			}
			return l.DeleteBranch(cmd.Context(), args[0])
		},
	}
}

func newBranchSwitchCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name>",
		Short: "Resolve the directory a branch is (or should be) checked out in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Detect(cfg.Root)
			if err != nil {
				return err
			}
			path, err := l.SwitchBranch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func newBranchRenameCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a branch, moving its directory where applicable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Detect(cfg.Root)
			if err != nil {
				return err
			}
			return l.RenameBranch(cmd.Context(), args[0], args[1])
		},
	}
}
