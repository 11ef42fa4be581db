package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tinte/internal/config"
	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

type migrateOptions struct {
	source       sourceFlags
	overridePath string
	provider     string
	write        bool
}

func newMigrateCmd(a *app) *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite persisted overrides in the current nested shape",
		Long: `Rewrite persisted overrides in the current nested shape.

With --override, the file holds either a map of provider IDs to overrides or,
with --provider, a single override. With --theme, the document's overrides
section is rewritten. Malformed fragments are dropped and reported as warnings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.overridePath != "" {
				return opts.migrateOverrideFile(cmd, a)
			}
			return opts.migrateDocument(cmd, a)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.overridePath, "override", "", "Path to a persisted override file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "Provider the override file belongs to")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the file in place instead of printing")

	return cmd
}

func (o *migrateOptions) migrateDocument(cmd *cobra.Command, a *app) error {
	doc, err := o.source.load()
	if err != nil {
		return err
	}
	if err := doc.MigrateOverrides(a.normalizer); err != nil {
		return fmt.Errorf("migrate overrides: %w", err)
	}

	if o.write {
		if doc.Path == "" {
			return errors.New("--write needs a theme file, not a preset")
		}
		if err := config.Save(doc.Path, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %s\n", doc.Path)
		return nil
	}

	data, err := config.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func (o *migrateOptions) migrateOverrideFile(cmd *cobra.Command, a *app) error {
	data, err := os.ReadFile(o.overridePath)
	if err != nil {
		return fmt.Errorf("read override: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return tinteerrors.NewParseError(o.overridePath, 0, err)
	}

	var migrated any
	if o.provider != "" {
		migrated = a.normalizer.Normalize(o.provider, raw)
	} else {
		migrated = a.normalizer.NormalizeAll(raw)
	}

	out, err := encodeLike(o.overridePath, migrated)
	if err != nil {
		return err
	}
	if o.write {
		if err := os.WriteFile(o.overridePath, out, 0o644); err != nil {
			return fmt.Errorf("write override: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %s\n", o.overridePath)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// encodeLike serializes v as JSON or YAML depending on path's extension.
// Values pass through JSON first so the nested shape written by the
// override marshalers is what ends up on disk.
func encodeLike(path string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return append(data, '\n'), nil
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
