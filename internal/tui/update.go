package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case ThemeChangedMsg:
		m.status = fmt.Sprintf("restored %s", m.Selected())
		return m, nil
	case SavedMsg:
		m.dirty = false
		m.errMsg = ""
		m.status = "saved " + msg.Path
		return m, nil
	case SaveErrorMsg:
		m.errMsg = msg.Err.Error()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(theme.Tokens)-1 {
			m.cursor++
		}
	case "tab":
		if m.mode == theme.Light {
			m.mode = theme.Dark
		} else {
			m.mode = theme.Light
		}
		m.status = fmt.Sprintf("editing %s", m.mode)
	case "enter", "e":
		m.editing = true
		m.errMsg = ""
		m.input.SetValue(m.Theme().Block(m.mode).Get(m.Selected()))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "u":
		if m.history.Undo() {
			m.dirty = true
			m.invalidatePreview()
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
	case "r":
		if m.history.Redo() {
			m.dirty = true
			m.invalidatePreview()
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}
	case "s":
		if m.save == nil {
			m.errMsg = "saving is disabled"
			return m, nil
		}
		m.status = "saving…"
		return m, saveCmd(m.save, m.Theme())
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.status = "edit cancelled"
		return m, nil
	case tea.KeyEnter:
		return m.commitEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	value, err := color.Normalize(m.input.Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	current := m.Theme()
	block := current.Block(m.mode).With(m.Selected(), value)
	if m.history.Push(current.WithBlock(m.mode, block)) {
		m.dirty = true
		m.invalidatePreview()
		m.status = fmt.Sprintf("%s.%s = %s", m.mode, m.Selected(), value)
	} else {
		m.status = "unchanged"
	}

	m.editing = false
	m.errMsg = ""
	m.input.Blur()
	return m, nil
}

func (m Model) invalidatePreview() {
	if m.preview != nil {
		m.preview.InvalidateTheme(m.name)
	}
}
