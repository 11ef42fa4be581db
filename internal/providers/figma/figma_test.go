package figma

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/providers/shadcn"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]Number{
		"0.5rem":   {Raw: "0.5rem", Value: 8, Unit: "rem"},
		"3px":      {Raw: "3px", Value: 3, Unit: "px"},
		"-0.025em": {Raw: "-0.025em", Value: -0.025, Unit: "em"},
		"0.1":      {Raw: "0.1", Value: 0.1},
		".5":       {Raw: ".5", Value: 0.5},
		"50%":      {Raw: "50%", Value: 50, Unit: "%"},
	}
	for raw, want := range cases {
		got, ok := ParseNumber(raw)
		require.True(t, ok, raw)
		require.InDelta(t, want.Value, got.Value, 1e-9, raw)
		require.Equal(t, want.Unit, got.Unit, raw)
		require.Equal(t, want.Raw, got.Raw, raw)
	}

	for _, raw := range []string{"", "abc", "1..2px", "calc(1px)", "2vw"} {
		_, ok := ParseNumber(raw)
		require.False(t, ok, raw)
	}
}

func TestSplitShadcnPalette(t *testing.T) {
	t.Parallel()

	flat := shadcn.Convert(themetest.LightBlock(), theme.Light)
	c := Split(flat)

	require.Len(t, c.Colors, len(shadcn.Tokens)+1, "every shadcn color plus shadow-color")
	require.Equal(t, 1.0, c.Colors["background"].R)
	require.Equal(t, 1.0, c.Colors["background"].A)
	require.Equal(t, 0.0, c.Colors["foreground"].G)
	require.InDelta(t, 0.1, c.Colors["shadow-color"].A, 1e-9)

	require.InDelta(t, 8.0, c.Numbers["radius"].Value, 1e-9)
	require.Contains(t, c.Numbers, "letter-spacing")
	require.Contains(t, c.Numbers, "shadow-blur")
	require.NotContains(t, c.Numbers, "shadow-color")
	require.NotContains(t, c.Colors, "font-sans")
	require.NotContains(t, c.Numbers, "font-sans")
	require.Empty(t, c.Skipped)
}

func TestSplitSkipsUnconvertibleValues(t *testing.T) {
	t.Parallel()

	c := Split(palette.Palette{
		"primary":     "oklch(0.6 0.2 250)",
		"radius":      "calc(1rem - 2px)",
		"accent":      "#abc",
		"shadow-blur": "4px",
	})
	require.Equal(t, []string{"primary", "radius"}, c.Skipped)
	require.Contains(t, c.Colors, "accent")
	require.Contains(t, c.Numbers, "shadow-blur")
}

func TestSplitShadowOpacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opacity   string
		wantAlpha float64
		skipped   bool
	}{
		{name: "fraction", opacity: "0.25", wantAlpha: 0.25},
		{name: "percentage", opacity: "10%", wantAlpha: 0.1},
		{name: "length unit", opacity: "3px", wantAlpha: 1, skipped: true},
		{name: "out of range", opacity: "150%", wantAlpha: 1, skipped: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Split(palette.Palette{"shadow-color": "#000000", "shadow-opacity": tt.opacity})
			require.InDelta(t, tt.wantAlpha, c.Colors["shadow-color"].A, 1e-9)
			if tt.skipped {
				require.Equal(t, []string{"shadow-opacity"}, c.Skipped)
				require.NotContains(t, c.Numbers, "shadow-opacity")
			} else {
				require.Empty(t, c.Skipped)
				require.Contains(t, c.Numbers, "shadow-opacity")
			}
		})
	}
}

func TestSplitChannelsAreUnitRange(t *testing.T) {
	t.Parallel()

	c := Split(shadcn.Convert(themetest.DarkBlock(), theme.Dark))
	for key, rgba := range c.Colors {
		for _, ch := range []float64{rgba.R, rgba.G, rgba.B, rgba.A} {
			require.GreaterOrEqual(t, ch, 0.0, key)
			require.LessOrEqual(t, ch, 1.0, key)
		}
	}
}

func TestDocumentMarshalIsDeterministic(t *testing.T) {
	t.Parallel()

	doc := Document{Name: "Sample", Modes: map[string]Collection{
		"light": Split(shadcn.Convert(themetest.LightBlock(), theme.Light)),
		"dark":  Split(shadcn.Convert(themetest.DarkBlock(), theme.Dark)),
	}}
	first, err := Marshal(doc)
	require.NoError(t, err)
	second, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, []string{"dark", "light"}, doc.ModeNames())
}
