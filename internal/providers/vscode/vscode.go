// Package vscode converts canonical blocks into VS Code color themes.
package vscode

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// workbenchColor sources a workbench key from a canonical token, or from the
// best text color on another workbench key when On is set.
type workbenchColor struct {
	Key  string
	From theme.Token
	On   string
}

var workbench = []workbenchColor{
	{Key: "foreground", From: theme.Tx},
	{Key: "focusBorder", From: theme.Pr},
	{Key: "editor.background", From: theme.Bg},
	{Key: "editor.foreground", From: theme.Tx},
	{Key: "editor.lineHighlightBackground", From: theme.Bg2},
	{Key: "editor.selectionBackground", From: theme.UI2},
	{Key: "editorCursor.foreground", From: theme.Pr},
	{Key: "editorLineNumber.foreground", From: theme.Tx3},
	{Key: "editorLineNumber.activeForeground", From: theme.Tx2},
	{Key: "editorIndentGuide.background1", From: theme.UI},
	{Key: "editorWhitespace.foreground", From: theme.UI2},
	{Key: "activityBar.background", From: theme.Bg2},
	{Key: "activityBar.foreground", From: theme.Tx},
	{Key: "activityBarBadge.background", From: theme.Pr},
	{Key: "activityBarBadge.foreground", On: "activityBarBadge.background"},
	{Key: "sideBar.background", From: theme.Bg2},
	{Key: "sideBar.foreground", From: theme.Tx2},
	{Key: "sideBar.border", From: theme.UI},
	{Key: "statusBar.background", From: theme.Bg2},
	{Key: "statusBar.foreground", From: theme.Tx2},
	{Key: "statusBar.border", From: theme.UI},
	{Key: "titleBar.activeBackground", From: theme.Bg2},
	{Key: "titleBar.activeForeground", From: theme.Tx},
	{Key: "tab.activeBackground", From: theme.Bg},
	{Key: "tab.activeForeground", From: theme.Tx},
	{Key: "tab.inactiveBackground", From: theme.Bg2},
	{Key: "tab.inactiveForeground", From: theme.Tx3},
	{Key: "tab.border", From: theme.UI},
	{Key: "panel.background", From: theme.Bg},
	{Key: "panel.border", From: theme.UI},
	{Key: "input.background", From: theme.Bg2},
	{Key: "input.border", From: theme.UI2},
	{Key: "input.foreground", From: theme.Tx},
	{Key: "dropdown.background", From: theme.Bg2},
	{Key: "button.background", From: theme.Pr},
	{Key: "button.foreground", On: "button.background"},
	{Key: "button.secondaryBackground", From: theme.Sc},
	{Key: "button.secondaryForeground", On: "button.secondaryBackground"},
	{Key: "badge.background", From: theme.Sc},
	{Key: "badge.foreground", On: "badge.background"},
	{Key: "list.activeSelectionBackground", From: theme.UI},
	{Key: "list.activeSelectionForeground", From: theme.Tx},
	{Key: "list.hoverBackground", From: theme.UI},
	{Key: "terminal.background", From: theme.Bg},
	{Key: "terminal.foreground", From: theme.Tx},
	{Key: "textLink.foreground", From: theme.Pr},
}

// WorkbenchKeys lists the workbench color keys in emission order.
var WorkbenchKeys = func() []string {
	out := make([]string, len(workbench))
	for i, w := range workbench {
		out[i] = w.Key
	}
	return out
}()

// Derive returns workbench colors and syntax role colors in one flat palette.
// Role names come from TokenRules and never contain a dot.
func Derive(block theme.Block, mode theme.Mode) palette.Derived {
	colors := make(palette.Palette, len(workbench)+len(TokenRules))
	for _, w := range workbench {
		if w.On != "" {
			text, err := color.BestTextColor(colors[w.On])
			if err != nil {
				text = block.Tx
			}
			colors[w.Key] = text
			continue
		}
		colors[w.Key] = block.Get(w.From)
	}
	for role, value := range TokenRules.Resolve(block, mode) {
		colors[role] = value
	}
	return palette.Derived{Colors: colors}
}

// TokenSettings is the settings object of a tokenColors entry.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// TokenColor is one tokenColors entry.
type TokenColor struct {
	Name     string        `json:"name,omitempty"`
	Scope    []string      `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

// Theme is a VS Code color theme document.
type Theme struct {
	Name                 string            `json:"name"`
	Type                 string            `json:"type"`
	SemanticHighlighting bool              `json:"semanticHighlighting"`
	Colors               map[string]string `json:"colors"`
	TokenColors          []TokenColor      `json:"tokenColors"`
}

// Assemble splits a merged palette back into workbench colors and tokenColors.
// Keys naming a rule in TokenRules become tokenColors; everything else,
// including keys added by overrides, stays a workbench color.
func Assemble(name string, mode theme.Mode, d palette.Derived) Theme {
	colors := make(map[string]string, len(d.Colors))
	for key, value := range d.Colors {
		if _, isRole := TokenRules.Lookup(key); isRole {
			continue
		}
		colors[key] = value
	}

	tokenColors := make([]TokenColor, 0, len(TokenRules))
	for _, rule := range TokenRules {
		fg, ok := d.Colors[rule.Name]
		if !ok {
			fg = rule.Resolve(theme.Block{}, mode)
		}
		tokenColors = append(tokenColors, TokenColor{
			Name:     rule.Name,
			Scope:    append([]string(nil), rule.Scopes...),
			Settings: TokenSettings{Foreground: fg, FontStyle: rule.FontStyle},
		})
	}

	return Theme{
		Name:                 name,
		Type:                 string(mode),
		SemanticHighlighting: true,
		Colors:               colors,
		TokenColors:          tokenColors,
	}
}

// Convert derives and assembles without overrides.
func Convert(name string, block theme.Block, mode theme.Mode) Theme {
	return Assemble(name, mode, Derive(block, mode))
}

// Marshal encodes the theme as indented JSON. Map keys are emitted sorted, so
// output is stable.
func Marshal(t Theme) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ScopeColors flattens tokenColors into scope to settings, last entry wins as
// in VS Code.
func (t Theme) ScopeColors() map[string]TokenSettings {
	out := make(map[string]TokenSettings)
	for _, tc := range t.TokenColors {
		for _, scope := range tc.Scope {
			out[scope] = tc.Settings
		}
	}
	return out
}
