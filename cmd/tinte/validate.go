package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinte/internal/config"
)

func newValidateCmd(a *app) *cobra.Command {
	var source sourceFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a theme document is well-formed and complete",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := source.load()
			if err != nil {
				return err
			}
			if err := config.ValidateDocument(doc); err != nil {
				return fmt.Errorf("invalid theme: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", doc.Name)
			if providers := doc.NormalizedOverrides(a.normalizer).Providers(); len(providers) > 0 {
				fmt.Fprintf(out, "  overrides: %v\n", providers)
			}
			return nil
		},
	}

	source.register(cmd)
	return cmd
}
