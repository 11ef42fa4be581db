package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinte/internal/config"
	"github.com/alexisbeaulieu97/tinte/internal/presets"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// sourceFlags selects the theme document a command works on.
type sourceFlags struct {
	themePath string
	preset    string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.themePath, "theme", "t", "", "Path to a theme document (YAML or JSON)")
	cmd.Flags().StringVarP(&s.preset, "preset", "p", "", "Use a built-in preset ("+strings.Join(presets.Names(), ", ")+")")
}

func (s *sourceFlags) load() (*config.Document, error) {
	switch {
	case s.themePath != "" && s.preset != "":
		return nil, errors.New("--theme and --preset are mutually exclusive")
	case s.preset != "":
		return presets.Load(s.preset)
	case strings.TrimSpace(s.themePath) == "":
		return nil, errors.New("a theme is required: pass --theme or --preset")
	}
	doc, err := config.Load(s.themePath)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return doc, nil
}

func parseMode(value string) (theme.Mode, error) {
	return theme.ParseMode(strings.ToLower(strings.TrimSpace(value)))
}
