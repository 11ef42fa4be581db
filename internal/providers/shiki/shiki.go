// Package shiki converts canonical blocks into Shiki's css-variables theme.
package shiki

import (
	"bytes"
	"fmt"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/scopes"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// VariablePrefix is prepended to every emitted custom property.
const VariablePrefix = "--shiki-"

// TokenRules is maintained separately from the VS Code table. Several chains
// differ (function, constant, punctuation, link, comment); they are kept as
// they ship rather than reconciled.
var TokenRules = scopes.Table{
	{Name: "foreground", Fallbacks: []theme.Token{theme.Tx}, Light: "#24292e", Dark: "#e1e4e8"},
	{Name: "background", Fallbacks: []theme.Token{theme.Bg}, Light: "#ffffff", Dark: "#24292e"},
	{Name: "token-constant", Fallbacks: []theme.Token{theme.Ac3, theme.Ac1}, Light: "#005cc5", Dark: "#79b8ff"},
	{Name: "token-string", Fallbacks: []theme.Token{theme.Ac1, theme.Ac2}, Light: "#032f62", Dark: "#9ecbff"},
	{Name: "token-comment", Fallbacks: []theme.Token{theme.Tx3, theme.Tx2}, Light: "#6a737d", Dark: "#6a737d"},
	{Name: "token-keyword", Fallbacks: []theme.Token{theme.Pr, theme.Sc}, Light: "#d73a49", Dark: "#f97583"},
	{Name: "token-parameter", Fallbacks: []theme.Token{theme.Tx2, theme.Tx}, Light: "#24292e", Dark: "#e1e4e8"},
	{Name: "token-function", Fallbacks: []theme.Token{theme.Pr, theme.Ac2}, Light: "#6f42c1", Dark: "#b392f0"},
	{Name: "token-string-expression", Fallbacks: []theme.Token{theme.Ac2, theme.Ac1}, Light: "#22863a", Dark: "#85e89d"},
	{Name: "token-punctuation", Fallbacks: []theme.Token{theme.Tx3, theme.Tx2}, Light: "#24292e", Dark: "#e1e4e8"},
	{Name: "token-link", Fallbacks: []theme.Token{theme.Ac1, theme.Pr}, Light: "#032f62", Dark: "#dbedff"},
}

// Derive resolves every variable for one mode, keyed without the prefix.
func Derive(block theme.Block, mode theme.Mode) palette.Derived {
	return palette.Derived{Colors: palette.Palette(TokenRules.Resolve(block, mode))}
}

// Variables maps full custom property names ("--shiki-token-keyword") to colors.
type Variables map[string]string

// Assemble prefixes every merged key.
func Assemble(d palette.Derived) Variables {
	out := make(Variables, len(d.Colors))
	for key, value := range d.Colors {
		out[VariablePrefix+key] = value
	}
	return out
}

// Convert derives and assembles without overrides.
func Convert(block theme.Block, mode theme.Mode) Variables {
	return Assemble(Derive(block, mode))
}

// Theme holds both modes.
type Theme struct {
	Light Variables `json:"light"`
	Dark  Variables `json:"dark"`
}

var cssOrder = func() []string {
	out := make([]string, len(TokenRules))
	for i, name := range TokenRules.Names() {
		out[i] = VariablePrefix + name
	}
	return out
}()

// RenderCSS writes :root (light) and .dark blocks.
func RenderCSS(t Theme) []byte {
	var buf bytes.Buffer
	writeBlock(&buf, ":root", t.Light)
	buf.WriteString("\n")
	writeBlock(&buf, ".dark", t.Dark)
	return buf.Bytes()
}

func writeBlock(buf *bytes.Buffer, selector string, vars Variables) {
	fmt.Fprintf(buf, "%s {\n", selector)
	p := palette.Palette(vars)
	for _, key := range p.Ordered(cssOrder) {
		fmt.Fprintf(buf, "  %s: %s;\n", key, p[key])
	}
	buf.WriteString("}\n")
}
