package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/providers/shadcn"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// ButtonVariant selects which shadcn color pair paints a button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonDestructive
	ButtonOutline
)

// AlertVariant selects the alert accent.
type AlertVariant int

const (
	AlertDefault AlertVariant = iota
	AlertDestructive
)

// Kit renders mock UI components painted with a shadcn palette, so a theme
// can be judged the way it will look in an application.
type Kit struct {
	renderer *lipgloss.Renderer
	colors   palette.Palette
}

// NewKit derives the shadcn palette of block and returns a Kit over it.
func (p *Previewer) NewKit(block theme.Block, mode theme.Mode) Kit {
	return Kit{renderer: p.renderer, colors: shadcn.Derive(block, mode).Colors}
}

func (k Kit) color(token string) lipgloss.Color {
	return lipgloss.Color(k.colors[token])
}

// Button renders label as a button.
func (k Kit) Button(label string, variant ButtonVariant) string {
	style := k.renderer.NewStyle().Padding(0, 2).Bold(true)
	switch variant {
	case ButtonSecondary:
		style = style.Background(k.color("secondary")).Foreground(k.color("secondary-foreground"))
	case ButtonDestructive:
		style = style.Background(k.color("destructive")).Foreground(k.color("destructive-foreground"))
	case ButtonOutline:
		style = style.Background(k.color("background")).Foreground(k.color("foreground")).
			Border(lipgloss.RoundedBorder()).BorderForeground(k.color("border")).Padding(0, 1)
	default:
		style = style.Background(k.color("primary")).Foreground(k.color("primary-foreground"))
	}
	return style.Render(label)
}

// Buttons renders one button per variant side by side.
func (k Kit) Buttons() string {
	buttons := []string{
		k.Button("Primary", ButtonPrimary),
		k.Button("Secondary", ButtonSecondary),
		k.Button("Delete", ButtonDestructive),
		k.Button("Outline", ButtonOutline),
	}
	return strings.Join(buttons, " ")
}

// Card renders a bordered card with a muted description line.
func (k Kit) Card(title, description, body string) string {
	heading := k.renderer.NewStyle().Bold(true).Foreground(k.color("card-foreground")).Render(title)
	muted := k.renderer.NewStyle().Foreground(k.color("muted-foreground")).Render(description)

	content := []string{heading}
	if description != "" {
		content = append(content, muted)
	}
	if body != "" {
		content = append(content, "", k.renderer.NewStyle().Foreground(k.color("card-foreground")).Render(body))
	}

	return k.renderer.NewStyle().
		Background(k.color("card")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(k.color("border")).
		Padding(0, 1).
		Render(strings.Join(content, "\n"))
}

// Alert renders a left-ruled alert.
func (k Kit) Alert(title, message string, variant AlertVariant) string {
	accent := k.color("foreground")
	if variant == AlertDestructive {
		accent = k.color("destructive")
	}
	heading := k.renderer.NewStyle().Bold(true).Foreground(accent).Render(title)
	text := k.renderer.NewStyle().Foreground(k.color("muted-foreground")).Render(message)

	return k.renderer.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		Render(heading + "\n" + text)
}

// Showcase renders the standard set of components.
func (k Kit) Showcase() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		k.Buttons(),
		"",
		k.Card("Create project", "Deploy your new project in one click.", "Framework: Next.js"),
		"",
		k.Alert("Heads up!", "You can add components to your app using the CLI.", AlertDefault),
		k.Alert("Error", "Your session has expired. Please log in again.", AlertDestructive),
	)
}
