package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tinte/internal/config"
	"github.com/alexisbeaulieu97/tinte/internal/history"
	"github.com/alexisbeaulieu97/tinte/internal/preview"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/tui"
)

type editOptions struct {
	source sourceFlags
	out    string
	limit  int
}

var errNotInteractive = errors.New("edit needs an interactive terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newEditCmd(a *app) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a theme interactively with undo and redo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotInteractive
			}
			doc, err := opts.source.load()
			if err != nil {
				return err
			}
			if err := config.ValidateDocument(doc); err != nil {
				return fmt.Errorf("invalid theme: %w", err)
			}
			return runEdit(a, doc, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Where to save (default: the loaded theme file)")
	cmd.Flags().IntVar(&opts.limit, "history", history.DefaultLimit, "Number of undo steps kept")

	return cmd
}

func runEdit(a *app, doc *config.Document, opts *editOptions) error {
	var program *tea.Program

	h := history.New(doc.Theme(),
		history.WithLimit(opts.limit),
		history.WithLogger(a.log),
		history.WithOnChange(func(t theme.Theme) {
			if program != nil {
				program.Send(tui.ThemeChangedMsg{Theme: t})
			}
		}),
	)
	defer h.Close()

	modelOpts := []tui.Option{tui.WithPreview(preview.New(os.Stdout, nil))}
	if path := opts.savePath(doc); path != "" {
		modelOpts = append(modelOpts, tui.WithSave(func(t theme.Theme) (string, error) {
			if err := config.Save(path, doc.WithTheme(t)); err != nil {
				return "", err
			}
			return path, nil
		}))
	}

	program = tea.NewProgram(tui.NewModel(doc.Name, h, modelOpts...), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}

func (o *editOptions) savePath(doc *config.Document) string {
	if o.out != "" {
		return o.out
	}
	return doc.Path
}
