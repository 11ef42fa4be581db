// Package themetest provides canonical fixtures for tests.
package themetest

import "github.com/alexisbeaulieu97/tinte/internal/theme"

// LightBlock is a valid light block with a pure white background and black text.
func LightBlock() theme.Block {
	return theme.Block{
		Bg:  "#ffffff",
		Bg2: "#f4f4f5",
		UI:  "#e4e4e7",
		UI2: "#d4d4d8",
		UI3: "#a1a1aa",
		Tx:  "#000000",
		Tx2: "#3f3f46",
		Tx3: "#71717a",
		Pr:  "#2563eb",
		Sc:  "#7c3aed",
		Ac1: "#16a34a",
		Ac2: "#ea580c",
		Ac3: "#db2777",
	}
}

// DarkBlock is a valid dark block.
func DarkBlock() theme.Block {
	return theme.Block{
		Bg:  "#09090b",
		Bg2: "#18181b",
		UI:  "#27272a",
		UI2: "#3f3f46",
		UI3: "#52525b",
		Tx:  "#fafafa",
		Tx2: "#d4d4d8",
		Tx3: "#a1a1aa",
		Pr:  "#60a5fa",
		Sc:  "#a78bfa",
		Ac1: "#4ade80",
		Ac2: "#fb923c",
		Ac3: "#f472b6",
	}
}

// Theme pairs LightBlock and DarkBlock.
func Theme() theme.Theme {
	return theme.Theme{Light: LightBlock(), Dark: DarkBlock()}
}
