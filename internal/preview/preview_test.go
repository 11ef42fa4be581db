package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

func newTestPreviewer() *Previewer {
	return New(&bytes.Buffer{}, nil)
}

func TestRenderIncludesEveryToken(t *testing.T) {
	t.Parallel()

	out, err := newTestPreviewer().Render("Test", themetest.Theme(), Options{Mode: theme.Dark})
	require.NoError(t, err)

	require.Contains(t, out, "Test • dark")
	for _, tok := range theme.Tokens {
		require.Contains(t, out, themetest.DarkBlock().Get(tok), tok)
	}
	require.Contains(t, out, "Sample (go)")
	require.Contains(t, out, "Greet")
}

func TestRenderDefaultsToLightMode(t *testing.T) {
	t.Parallel()

	out, err := newTestPreviewer().Render("Test", themetest.Theme(), Options{})
	require.NoError(t, err)
	require.Contains(t, out, "Test • light")
	require.Contains(t, out, "#2563eb")
}

func TestRenderUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := newTestPreviewer().Render("Test", themetest.Theme(), Options{Language: "cobol"})
	require.ErrorContains(t, err, "cobol")
}

func TestCheckContrast(t *testing.T) {
	t.Parallel()

	results, err := CheckContrast(themetest.LightBlock())
	require.NoError(t, err)
	require.Len(t, results, len(ContrastPairs))

	first := results[0]
	require.Equal(t, theme.Tx, first.Pair.Foreground)
	require.InDelta(t, 21.0, first.Ratio, 1e-9)
	require.True(t, first.Pass())

	washed := themetest.LightBlock().With(theme.Tx, "#eeeeee")
	results, err = CheckContrast(washed)
	require.NoError(t, err)
	require.False(t, results[0].Pass())
}

func TestGradientShowsAllStops(t *testing.T) {
	t.Parallel()

	out, err := newTestPreviewer().Gradient("#808080")
	require.NoError(t, err)
	require.Contains(t, out, "#626262")
	require.Contains(t, out, "#808080")
	require.Contains(t, out, "#949494")
	require.Contains(t, out, "linear-gradient(135deg")

	_, err = newTestPreviewer().Gradient("grey")
	require.Error(t, err)
}

func TestCodeUsesCachePerMode(t *testing.T) {
	t.Parallel()

	p := newTestPreviewer()
	th := themetest.Theme()

	for i := 0; i < 3; i++ {
		_, err := p.Code("Cached", th.Light, theme.Light, "go")
		require.NoError(t, err)
	}
	_, err := p.Code("Cached", th.Dark, theme.Dark, "go")
	require.NoError(t, err)
	require.Equal(t, 2, p.Cache().Builds())

	p.InvalidateTheme("Cached")
	require.Zero(t, p.Cache().Len())
}

func TestCodeKeepsSampleText(t *testing.T) {
	t.Parallel()

	out, err := newTestPreviewer().Code("Text", themetest.LightBlock(), theme.Light, "typescript")
	require.NoError(t, err)
	require.Contains(t, out, "'flexoki'")
	require.Equal(t, 1, strings.Count(out, "const"))
}
