package preview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	swatch  lipgloss.Style
	code    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		label:   r.NewStyle().Width(6),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
		pass:    r.NewStyle().Foreground(lipgloss.Color("42")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		swatch:  r.NewStyle().Padding(0, 1),
		code:    r.NewStyle().Padding(1, 2),
	}
}
