// Package shadcn converts canonical blocks into shadcn/ui CSS variables.
package shadcn

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Default theme-level values emitted when no override supplies one.
const (
	DefaultFontSans      = "Inter, ui-sans-serif, system-ui, sans-serif"
	DefaultFontSerif     = "ui-serif, Georgia, Cambria, serif"
	DefaultFontMono      = "JetBrains Mono, ui-monospace, SFMono-Regular, monospace"
	DefaultRadius        = "0.5rem"
	DefaultLetterSpacing = "0em"
)

// DefaultShadow is the baseline shadow for both modes.
var DefaultShadow = palette.Shadow{
	Color:   "#000000",
	Opacity: "0.1",
	Blur:    "3px",
	Spread:  "0px",
	OffsetX: "0px",
	OffsetY: "1px",
}

// role describes where a shadcn token takes its color from. Exactly one of
// From, On or the literals applies.
type role struct {
	Token string
	From  theme.Token
	// On names another shadcn token; the role becomes its best text color.
	On    string
	Light string
	Dark  string
}

// roles is evaluated in order, so every On target precedes its foreground.
var roles = []role{
	{Token: "background", From: theme.Bg},
	{Token: "foreground", From: theme.Tx},
	{Token: "card", From: theme.Bg2},
	{Token: "card-foreground", From: theme.Tx},
	{Token: "popover", From: theme.Bg2},
	{Token: "popover-foreground", From: theme.Tx},
	{Token: "primary", From: theme.Pr},
	{Token: "primary-foreground", On: "primary"},
	{Token: "secondary", From: theme.Sc},
	{Token: "secondary-foreground", On: "secondary"},
	{Token: "muted", From: theme.Bg2},
	{Token: "muted-foreground", From: theme.Tx3},
	{Token: "accent", From: theme.UI},
	{Token: "accent-foreground", From: theme.Tx},
	{Token: "destructive", Light: "#dc2626", Dark: "#ef4444"},
	{Token: "destructive-foreground", On: "destructive"},
	{Token: "border", From: theme.UI2},
	{Token: "input", From: theme.UI},
	{Token: "ring", From: theme.Pr},
	{Token: "chart-1", From: theme.Pr},
	{Token: "chart-2", From: theme.Sc},
	{Token: "chart-3", From: theme.Ac1},
	{Token: "chart-4", From: theme.Ac2},
	{Token: "chart-5", From: theme.Ac3},
	{Token: "sidebar", From: theme.Bg2},
	{Token: "sidebar-foreground", From: theme.Tx},
	{Token: "sidebar-primary", From: theme.Pr},
	{Token: "sidebar-primary-foreground", On: "sidebar-primary"},
	{Token: "sidebar-accent", From: theme.UI},
	{Token: "sidebar-accent-foreground", From: theme.Tx},
	{Token: "sidebar-border", From: theme.UI2},
	{Token: "sidebar-ring", From: theme.Pr},
}

// Tokens lists every color token the adapter emits, in CSS order.
var Tokens = func() []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.Token
	}
	return out
}()

// Derive maps block onto the shadcn vocabulary. The result is fully populated.
func Derive(block theme.Block, mode theme.Mode) palette.Derived {
	colors := make(palette.Palette, len(roles))
	for _, r := range roles {
		switch {
		case r.From != "":
			colors[r.Token] = block.Get(r.From)
		case r.On != "":
			if text, err := color.BestTextColor(colors[r.On]); err == nil {
				colors[r.Token] = text
			}
		case mode == theme.Dark:
			colors[r.Token] = r.Dark
		default:
			colors[r.Token] = r.Light
		}
	}

	for _, tok := range Tokens {
		if colors[tok] != "" {
			continue
		}
		if strings.HasSuffix(tok, "-foreground") {
			colors[tok] = block.Tx
		} else {
			colors[tok] = block.Bg
		}
	}

	return palette.Derived{
		Colors:        colors,
		Fonts:         palette.Fonts{Sans: DefaultFontSans, Serif: DefaultFontSerif, Mono: DefaultFontMono},
		Radius:        DefaultRadius,
		LetterSpacing: DefaultLetterSpacing,
		Shadow:        DefaultShadow,
	}
}

// Convert returns the flat shadcn block for one mode.
func Convert(block theme.Block, mode theme.Mode) palette.Palette {
	return Derive(block, mode).Flatten()
}

// Theme is the two-mode shadcn output.
type Theme struct {
	Light palette.Palette `json:"light"`
	Dark  palette.Palette `json:"dark"`
}

// Assemble builds a Theme from already-merged per-mode values.
func Assemble(light, dark palette.Derived) Theme {
	return Theme{Light: light.Flatten(), Dark: dark.Flatten()}
}

var cssOrder = append(append([]string{}, Tokens...), palette.ThemeLevelKeys...)

// RenderCSS writes the theme as :root and .dark variable blocks.
func RenderCSS(t Theme) []byte {
	var buf bytes.Buffer
	writeBlock(&buf, ":root", t.Light)
	buf.WriteString("\n")
	writeBlock(&buf, ".dark", t.Dark)
	return buf.Bytes()
}

func writeBlock(buf *bytes.Buffer, selector string, p palette.Palette) {
	fmt.Fprintf(buf, "%s {\n", selector)
	for _, key := range p.Ordered(cssOrder) {
		fmt.Fprintf(buf, "  --%s: %s;\n", key, p[key])
	}
	buf.WriteString("}\n")
}
