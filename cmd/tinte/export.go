package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinte/internal/config"
	"github.com/alexisbeaulieu97/tinte/internal/provider"
)

type exportOptions struct {
	source    sourceFlags
	providers []string
	outDir    string
}

func newExportCmd(a *app) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write provider files for a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.source.load()
			if err != nil {
				return err
			}

			ids := opts.resolveProviders(doc, a.service.Registry())
			outDir := opts.resolveOutDir(doc)

			files, err := a.service.ExportAll(ids, doc.Name, doc.Theme(), doc.NormalizedOverrides(a.normalizer))
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			for _, f := range files {
				path := filepath.Join(outDir, f.Name)
				if err := os.WriteFile(path, f.Content, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", f.Name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			a.log.WithFields(map[string]any{
				"providers": ids,
				"files":     len(files),
				"out_dir":   outDir,
			}).Info("export complete")
			return nil
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringSliceVar(&opts.providers, "provider", nil, "Provider IDs to export (default: document export list or all)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default: document out_dir or current directory)")

	return cmd
}

func (o *exportOptions) resolveProviders(doc *config.Document, reg *provider.Registry) []string {
	if len(o.providers) > 0 {
		return o.providers
	}
	if len(doc.Export.Providers) > 0 {
		return doc.Export.Providers
	}
	return reg.IDs()
}

func (o *exportOptions) resolveOutDir(doc *config.Document) string {
	if o.outDir != "" {
		return o.outDir
	}
	if doc.Export.OutDir != "" {
		return doc.Export.OutDir
	}
	return "."
}
