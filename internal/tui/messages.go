package tui

import "github.com/alexisbeaulieu97/tinte/internal/theme"

// ThemeChangedMsg reports that undo or redo restored a snapshot. The history
// manager's change callback forwards it to the program.
type ThemeChangedMsg struct {
	Theme theme.Theme
}

// SavedMsg reports a successful save.
type SavedMsg struct {
	Path string
}

// SaveErrorMsg reports a failed save.
type SaveErrorMsg struct {
	Err error
}
