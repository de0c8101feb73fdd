package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wgergely/repoctl/internal/config"
	"github.com/wgergely/repoctl/internal/extensions"
)

// newExtensionCmd groups the subcommands that manage a repository's
// `[extensions."name"]` manifest declarations against the known catalog
// internal/extensions.WithKnown bundles.
func newExtensionCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extension",
		Short: "Manage repository extension declarations",
	}
	cmd.AddCommand(
		newExtensionListCmd(cfg),
		newExtensionAddCmd(cfg),
		newExtensionInstallCmd(cfg),
		newExtensionRemoveCmd(cfg),
	)
	return cmd
}

// newExtensionListCmd prints the known catalog and, for each entry
// already declared in the manifest, the source it's pinned to.
func newExtensionListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known and declared extensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}

			known := extensions.WithKnown()
			for _, name := range known.KnownExtensions() {
				e, _ := known.Get(name)
				mark := " "
				if _, declared := w.manifest.Extensions[name]; declared {
					mark = "*"
				}
				fmt.Printf("%s %-12s %s\n", mark, name, e.Description)
			}

			declaredOnly := make([]string, 0)
			for name := range w.manifest.Extensions {
				if !known.Contains(name) {
					declaredOnly = append(declaredOnly, name)
				}
			}
			sort.Strings(declaredOnly)
			for _, name := range declaredOnly {
				decl := extensions.ParseConfig(w.manifest.Extensions[name])
				fmt.Printf("* %-12s %s\n", name, decl.Source)
			}
			return nil
		},
	}
}

// declareExtension validates name/source as an extensions.Entry and
// records the declaration in the manifest, keyed by name.
func declareExtension(w *workspace, name, source, ref string) error {
	entry := extensions.Entry{Name: name, Source: source}
	if err := entry.Validate(); err != nil {
		return err
	}

	decl := map[string]any{"source": source}
	if ref != "" {
		decl["ref"] = ref
	}
	if w.manifest.Extensions == nil {
		w.manifest.Extensions = make(map[string]map[string]any)
	}
	w.manifest.Extensions[name] = decl
	return w.saveManifest()
}

// newExtensionAddCmd declares an extension from an explicit source,
// for extensions outside the known catalog.
func newExtensionAddCmd(cfg *config.Config) *cobra.Command {
	var source, ref string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Declare an extension by explicit source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			if err := declareExtension(w, args[0], source, ref); err != nil {
				return err
			}
			fmt.Printf("declared extension %s -> %s\n", args[0], source)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "git source to pin the extension to (required)")
	cmd.Flags().StringVar(&ref, "ref", "", "ref to pin the extension to")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

// newExtensionInstallCmd declares an extension already present in the
// known catalog, resolving its source automatically.
func newExtensionInstallCmd(cfg *config.Config) *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "install <name>",
		Short: "Declare a known extension by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			known := extensions.WithKnown()
			entry, ok := known.Get(args[0])
			if !ok {
				return fmt.Errorf("%q is not a known extension; use 'extension add' with an explicit --source", args[0])
			}

			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			if err := declareExtension(w, entry.Name, entry.Source, ref); err != nil {
				return err
			}
			fmt.Printf("installed extension %s -> %s\n", entry.Name, entry.Source)
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "ref to pin the extension to")
	return cmd
}

// newExtensionRemoveCmd drops an extension's manifest declaration.
func newExtensionRemoveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an extension's declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := loadWorkspace(cfg)
			if err != nil {
				return err
			}
			delete(w.manifest.Extensions, args[0])
			return w.saveManifest()
		},
	}
}
