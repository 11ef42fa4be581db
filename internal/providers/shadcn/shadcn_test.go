package shadcn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

func TestDerivePassesThroughBackgroundAndForeground(t *testing.T) {
	t.Parallel()

	block := themetest.LightBlock()
	derived := Derive(block, theme.Light)
	require.Equal(t, "#ffffff", derived.Colors["background"])
	require.Equal(t, "#000000", derived.Colors["foreground"])
}

func TestDeriveIsFullyPopulated(t *testing.T) {
	t.Parallel()

	for _, mode := range theme.Modes {
		derived := Derive(themetest.Theme().Block(mode), mode)
		require.Len(t, derived.Colors, len(Tokens))
		for _, tok := range Tokens {
			require.NotEmpty(t, derived.Colors[tok], "%s/%s", mode, tok)
		}
	}
}

func TestDeriveTokenRoles(t *testing.T) {
	t.Parallel()

	block := themetest.DarkBlock()
	c := Derive(block, theme.Dark).Colors
	require.Equal(t, block.Pr, c["primary"])
	require.Equal(t, block.Pr, c["ring"])
	require.Equal(t, block.Tx3, c["muted-foreground"])
	require.Equal(t, block.UI2, c["border"])
	require.Equal(t, []string{block.Pr, block.Sc, block.Ac1, block.Ac2, block.Ac3},
		[]string{c["chart-1"], c["chart-2"], c["chart-3"], c["chart-4"], c["chart-5"]})
	require.Equal(t, "#ef4444", c["destructive"])
	require.Equal(t, "#dc2626", Derive(block, theme.Light).Colors["destructive"])
}

func TestDeriveComputesReadableForegrounds(t *testing.T) {
	t.Parallel()

	block := themetest.LightBlock()
	block.Pr = "#fde047"
	block.Sc = "#1e1b4b"
	c := Derive(block, theme.Light).Colors
	require.Equal(t, "#000000", c["primary-foreground"])
	require.Equal(t, "#ffffff", c["secondary-foreground"])
	require.Equal(t, c["primary-foreground"], c["sidebar-primary-foreground"])
}

func TestDeriveFallsBackToTxAndBgOnMalformedInput(t *testing.T) {
	t.Parallel()

	block := themetest.LightBlock()
	block.Pr = "not-a-color"
	block.UI2 = ""
	c := Derive(block, theme.Light).Colors
	require.Equal(t, block.Tx, c["primary-foreground"])
	require.Equal(t, block.Bg, c["border"])
}

func TestDeriveEmitsThemeLevelDefaults(t *testing.T) {
	t.Parallel()

	d := Derive(themetest.LightBlock(), theme.Light)
	require.Equal(t, DefaultRadius, d.Radius)
	require.Equal(t, DefaultFontSans, d.Fonts.Sans)
	require.Equal(t, DefaultFontMono, d.Fonts.Mono)
	require.Equal(t, DefaultFontSerif, d.Fonts.Serif)
	require.Equal(t, DefaultShadow, d.Shadow)

	flat := Convert(themetest.LightBlock(), theme.Light)
	require.Equal(t, DefaultRadius, flat["radius"])
	require.Equal(t, DefaultFontSans, flat["font-sans"])
	require.Equal(t, "0.1", flat["shadow-opacity"])
}

func TestConvertIsDeterministic(t *testing.T) {
	t.Parallel()

	block := themetest.DarkBlock()
	first := RenderCSS(Theme{Light: Convert(themetest.LightBlock(), theme.Light), Dark: Convert(block, theme.Dark)})
	second := RenderCSS(Theme{Light: Convert(themetest.LightBlock(), theme.Light), Dark: Convert(block, theme.Dark)})
	require.Equal(t, first, second)
}

func TestRenderCSSOrdersTokens(t *testing.T) {
	t.Parallel()

	light := Derive(themetest.LightBlock(), theme.Light)
	light.Colors["brand"] = "#123456"
	css := string(RenderCSS(Assemble(light, Derive(themetest.DarkBlock(), theme.Dark))))

	require.True(t, strings.HasPrefix(css, ":root {\n  --background: #ffffff;\n  --foreground: #000000;\n"))
	require.Contains(t, css, "\n.dark {\n  --background: #09090b;\n")
	require.Contains(t, css, "  --font-sans: "+DefaultFontSans+";\n")
	require.Less(t, strings.Index(css, "--shadow-offset-y"), strings.Index(css, "--brand"), "unknown keys come last")
}
