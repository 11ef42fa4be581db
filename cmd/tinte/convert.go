package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type convertOptions struct {
	source   sourceFlags
	provider string
	mode     string
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print a provider's native representation of one mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.source.load()
			if err != nil {
				return err
			}
			mode, err := parseMode(opts.mode)
			if err != nil {
				return err
			}

			overrides := doc.NormalizedOverrides(a.normalizer)
			native, err := a.service.Convert(opts.provider, doc.Name, doc.Theme(), mode, overrides.Get(opts.provider))
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(native)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.provider, "provider", "", "Provider ID")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "light", "Mode to convert (light or dark)")
	cmd.MarkFlagRequired("provider") //nolint:errcheck

	return cmd
}
