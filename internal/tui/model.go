package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tinte/internal/history"
	"github.com/alexisbeaulieu97/tinte/internal/preview"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Model is the Bubbletea state of the interactive theme editor. Every
// committed edit is pushed onto the history manager; the model never keeps
// its own copy of the theme.
type Model struct {
	name    string
	history *history.Manager
	save    SaveFunc
	preview *preview.Previewer

	mode    theme.Mode
	cursor  int
	editing bool
	input   textinput.Model

	dirty    bool
	status   string
	errMsg   string
	quitting bool
	width    int
}

// Option configures a Model.
type Option func(*Model)

// WithSave enables the save key.
func WithSave(save SaveFunc) Option {
	return func(m *Model) {
		m.save = save
	}
}

// WithPreview renders a highlighted sample under the token list.
func WithPreview(p *preview.Previewer) Option {
	return func(m *Model) {
		m.preview = p
	}
}

// NewModel returns an editor over h, which holds the theme being edited.
func NewModel(name string, h *history.Manager, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "#rrggbb"
	input.CharLimit = 7
	input.Prompt = "hex: "

	m := Model{
		name:    name,
		history: h,
		mode:    theme.Light,
		input:   input,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the theme currently at the top of the history.
func (m Model) Theme() theme.Theme {
	return m.history.Present()
}

// Mode returns the mode being edited.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// Selected returns the token under the cursor.
func (m Model) Selected() theme.Token {
	return theme.Tokens[m.cursor]
}

// Editing reports whether the hex input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Dirty reports whether there are unsaved edits.
func (m Model) Dirty() bool {
	return m.dirty
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Err returns the last error message.
func (m Model) Err() string {
	return m.errMsg
}

// Quitting reports whether the editor asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}
