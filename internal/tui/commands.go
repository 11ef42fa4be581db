package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// SaveFunc persists a theme and returns where it was written.
type SaveFunc func(theme.Theme) (string, error)

func saveCmd(save SaveFunc, t theme.Theme) tea.Cmd {
	return func() tea.Msg {
		path, err := save(t)
		if err != nil {
			return SaveErrorMsg{Err: err}
		}
		return SavedMsg{Path: path}
	}
}
