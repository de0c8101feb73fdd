package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/manifest"
	"github.com/wgergely/repoctl/internal/presets"
)

func newConfigCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved manifest",
	}
	cmd.AddCommand(newConfigShowCmd(cfg))
	return cmd
}

func newConfigShowCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the manifest resolved for this repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(w.manifest)
			}
			fmt.Printf("mode:    %s\n", w.manifest.Core.Mode)
			fmt.Printf("tools:   %v\n", w.manifest.Tools)
			fmt.Printf("rules:   %v\n", w.manifest.Rules)
			fmt.Printf("presets: %v\n", presetKeys(w.manifest.Presets))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func presetKeys(presets map[string]any) []string {
	out := make([]string, 0, len(presets))
	for id := range presets {
		out = append(out, id)
	}
	return out
}

func newToolCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage which tools the manifest names",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <slug>",
			Short: "Add a tool to the manifest's tool list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				if !w.tools.Has(args[0]) {
					return fmt.Errorf("unregistered tool %q", args[0])
				}
				w.manifest.Tools = appendUnique(w.manifest.Tools, args[0])
				return w.saveManifest()
			},
		},
		&cobra.Command{
			Use:   "remove <slug>",
			Short: "Remove a tool from the manifest's tool list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				w.manifest.Tools = removeString(w.manifest.Tools, args[0])
				return w.saveManifest()
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every registered tool",
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				for _, t := range w.tools.All() {
					fmt.Printf("%-20s %s\n", t.Slug, t.Category)
				}
				return nil
			},
		},
	)
	return cmd
}

func newRuleCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage individual rules in the registry",
	}
	var tags []string
	add := &cobra.Command{
		Use:   "add <id> <content>",
		Short: "Add a rule to the registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			if _, err := w.rules.AddRule(args[0], args[1], tags); err != nil {
				return err
			}
			w.manifest.Rules = appendUnique(w.manifest.Rules, args[0])
			return w.saveManifest()
		},
	}
	add.Flags().StringSliceVar(&tags, "tag", nil, "tags to attach to the rule")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a rule from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			rule, ok := w.rules.GetRuleByID(args[0])
			if !ok {
				return fmt.Errorf("no rule named %q", args[0])
			}
			if _, ok := w.rules.RemoveRule(rule.UUID); !ok {
				return fmt.Errorf("failed to remove rule %q", args[0])
			}
			w.manifest.Rules = removeString(w.manifest.Rules, args[0])
			return w.saveManifest()
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every rule in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			for _, r := range w.rules.AllRules() {
				fmt.Printf("%-20s %s\n", r.ID, r.Tags)
			}
			return nil
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}

func newPresetCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage which presets the manifest configures",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add a preset to the manifest, with empty configuration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				if w.manifest.Presets == nil {
					w.manifest.Presets = make(map[string]any)
				}
				if _, ok := w.manifest.Presets[args[0]]; !ok {
					w.manifest.Presets[args[0]] = map[string]any{}
				}
				return w.saveManifest()
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a preset from the manifest",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				delete(w.manifest.Presets, args[0])
				return w.saveManifest()
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every preset provider repoctl knows about",
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				for _, id := range w.presets.IDs() {
					fmt.Println(id)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Check every registered preset provider's state",
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				reports, errs := w.presets.CheckAll(context.Background(), presetContext(cfg, w.manifest))
				for _, id := range w.presets.IDs() {
					if err, ok := errs[id]; ok {
						fmt.Printf("%-16s error: %v\n", id, err)
						continue
					}
					r := reports[id]
					fmt.Printf("%-16s %s\n", id, r.Status)
					for _, d := range r.Details {
						fmt.Printf("  - %s\n", d)
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply <id>",
			Short: "Apply a preset provider's remedial action",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := loadWorkspace(cfg)
				if err != nil {
					return err
				}
				p, ok := w.presets.Get(args[0])
				if !ok {
					return fmt.Errorf("no registered preset provider %q", args[0])
				}
				report, err := p.Apply(context.Background(), presetContext(cfg, w.manifest))
				if err != nil {
					return err
				}
				for _, a := range report.ActionsTaken {
					fmt.Println(a)
				}
				for _, e := range report.Errors {
					fmt.Println(e)
				}
				if report.IsFailure() {
					return fmt.Errorf("apply failed for %q", args[0])
				}
				return nil
			},
		},
	)
	return cmd
}

// presetContext builds the presets.Context every provider's Check/Apply
// needs from the CLI-wide root plus the "env:python" preset's declared
// version, falling through to no constraint when it's absent.
func presetContext(cfg *config.Config, m manifest.Manifest) presets.Context {
	pc := presets.Context{Root: cfg.Root, VenvPath: filepath.Join(cfg.Root, ".venv")}
	if raw, ok := m.Presets["env:python"]; ok {
		if table, ok := raw.(map[string]any); ok {
			if v, ok := table["version"].(string); ok {
				pc.PythonVersion = v
			}
		}
	}
	return pc
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func removeString(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
