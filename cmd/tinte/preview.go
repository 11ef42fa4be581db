package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinte/internal/config"
	"github.com/alexisbeaulieu97/tinte/internal/preview"
)

type previewOptions struct {
	source   sourceFlags
	mode     string
	language string
}

func newPreviewCmd(a *app) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render swatches, contrast checks and a highlighted sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.source.load()
			if err != nil {
				return err
			}
			mode, err := parseMode(opts.mode)
			if err != nil {
				return err
			}
			if err := config.ValidateDocument(doc); err != nil {
				return fmt.Errorf("invalid theme: %w", err)
			}

			p := preview.New(cmd.OutOrStdout(), nil)
			out, err := p.Render(doc.Name, doc.Theme(), preview.Options{Mode: mode, Language: opts.language})
			if err != nil {
				return err
			}
			a.log.With("builds", p.Cache().Builds()).Debug("preview rendered")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "light", "Mode to preview (light or dark)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", preview.DefaultLanguage, "Sample language")

	return cmd
}
