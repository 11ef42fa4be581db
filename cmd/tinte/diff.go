package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinte/internal/override"
	"github.com/alexisbeaulieu97/tinte/internal/provider"
	"github.com/alexisbeaulieu97/tinte/pkg/diff"
)

type diffOptions struct {
	source   sourceFlags
	provider string
	stat     bool
}

func newDiffCmd(a *app) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what a document's overrides change in a provider's export",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.source.load()
			if err != nil {
				return err
			}

			t := doc.Theme()
			baseline, err := a.service.Export(opts.provider, doc.Name, t, override.ProviderOverride{})
			if err != nil {
				return fmt.Errorf("export baseline: %w", err)
			}
			ov := doc.NormalizedOverrides(a.normalizer).Get(opts.provider)
			overridden, err := a.service.Export(opts.provider, doc.Name, t, ov)
			if err != nil {
				return fmt.Errorf("export with overrides: %w", err)
			}

			out := cmd.OutOrStdout()
			changed := false
			for _, before := range baseline {
				after := findFile(overridden, before.Name)
				if opts.stat {
					stat := diff.Summarize(before.Content, after)
					if !stat.Empty() {
						changed = true
						fmt.Fprintf(out, "%s %s\n", before.Name, stat)
					}
					continue
				}
				text := diff.Unified(before.Content, after, "a/"+before.Name, "b/"+before.Name)
				if text != "" {
					changed = true
					fmt.Fprint(out, text)
				}
			}
			if !changed {
				fmt.Fprintf(out, "no differences for %s\n", opts.provider)
			}
			return nil
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.provider, "provider", "", "Provider ID")
	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Print a per-file change summary only")
	cmd.MarkFlagRequired("provider") //nolint:errcheck

	return cmd
}

func findFile(files []provider.File, name string) []byte {
	for _, f := range files {
		if f.Name == name {
			return f.Content
		}
	}
	return nil
}
