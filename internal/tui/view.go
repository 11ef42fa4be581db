package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	block := m.Theme().Block(m.mode)
	title := fmt.Sprintf("Tinte • %s • %s", m.name, m.mode)
	if m.dirty {
		title += " *"
	}

	sections := []string{
		titleStyle.Render(title),
		sectionStyle.Render("Tokens"),
		m.renderTokens(block),
	}

	if m.editing {
		sections = append(sections, sectionStyle.Render("Edit "+string(m.Selected())), m.input.View())
	}

	if m.preview != nil {
		if code, err := m.preview.Code(m.name, block, m.mode, "go"); err == nil {
			sections = append(sections, sectionStyle.Render("Preview"), code)
		}
	}

	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}

	sections = append(sections, helpStyle.Render(m.help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTokens(block theme.Block) string {
	rows := make([]string, 0, len(theme.Tokens))
	for i, tok := range theme.Tokens {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		hex := block.Get(tok)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker, labelStyle.Render(string(tok)), swatch(hex)))
	}
	return strings.Join(rows, "\n")
}

func swatch(hex string) string {
	fg, err := color.BestTextColor(hex)
	if err != nil {
		return errorStyle.Render(hex)
	}
	return swatchStyle.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color(fg)).Render(hex)
}

func (m Model) help() string {
	if m.editing {
		return "enter apply • esc cancel"
	}
	undo := "u undo"
	if !m.history.CanUndo() {
		undo = disabledStyle.Render(undo)
	}
	redo := "r redo"
	if !m.history.CanRedo() {
		redo = disabledStyle.Render(redo)
	}
	parts := []string{"↑/↓ move", "enter edit", "tab mode", undo, redo}
	if m.save != nil {
		parts = append(parts, "s save")
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " • ")
}
