// Package rayso renames canonical tokens into the Ray.so / terminal
// semantic vocabulary.
package rayso

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Names maps each canonical token to its semantic name.
var Names = map[theme.Token]string{
	theme.Tx:  "text",
	theme.Tx2: "text_2",
	theme.Tx3: "text_3",
	theme.UI:  "interface",
	theme.UI2: "interface_2",
	theme.UI3: "interface_3",
	theme.Bg:  "background",
	theme.Bg2: "background_2",
	theme.Pr:  "primary",
	theme.Sc:  "secondary",
	theme.Ac1: "accent",
	theme.Ac2: "accent_2",
	theme.Ac3: "accent_3",
}

// Block is one mode in the semantic vocabulary.
type Block struct {
	Text        string `json:"text"`
	Text2       string `json:"text_2"`
	Text3       string `json:"text_3"`
	Interface   string `json:"interface"`
	Interface2  string `json:"interface_2"`
	Interface3  string `json:"interface_3"`
	Background  string `json:"background"`
	Background2 string `json:"background_2"`
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	Accent2     string `json:"accent_2"`
	Accent3     string `json:"accent_3"`
}

// Derive renames every canonical token. The mode is unused: the mapping is
// identical for light and dark.
func Derive(block theme.Block, _ theme.Mode) palette.Derived {
	colors := make(palette.Palette, len(Names))
	for tok, name := range Names {
		colors[name] = block.Get(tok)
	}
	return palette.Derived{Colors: colors}
}

// Assemble reads the semantic keys back out of a merged palette. Keys outside
// the vocabulary are dropped since the format has no room for them.
func Assemble(d palette.Derived) Block {
	c := d.Colors
	return Block{
		Text:        c["text"],
		Text2:       c["text_2"],
		Text3:       c["text_3"],
		Interface:   c["interface"],
		Interface2:  c["interface_2"],
		Interface3:  c["interface_3"],
		Background:  c["background"],
		Background2: c["background_2"],
		Primary:     c["primary"],
		Secondary:   c["secondary"],
		Accent:      c["accent"],
		Accent2:     c["accent_2"],
		Accent3:     c["accent_3"],
	}
}

// Convert derives and assembles without overrides.
func Convert(block theme.Block, mode theme.Mode) Block {
	return Assemble(Derive(block, mode))
}

// Theme holds both modes.
type Theme struct {
	Light Block `json:"light"`
	Dark  Block `json:"dark"`
}

// Marshal encodes t as indented JSON.
func Marshal(t Theme) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
