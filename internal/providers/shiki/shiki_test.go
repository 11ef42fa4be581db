package shiki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/providers/vscode"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

func TestTokenRulesAreWellFormed(t *testing.T) {
	t.Parallel()

	require.NoError(t, TokenRules.Check())
}

func TestConvertEmitsPrefixedVariables(t *testing.T) {
	t.Parallel()

	block := themetest.LightBlock()
	vars := Convert(block, theme.Light)
	require.Len(t, vars, len(TokenRules))
	require.Equal(t, block.Pr, vars["--shiki-token-keyword"])
	require.Equal(t, block.Ac1, vars["--shiki-token-string"])
	require.Equal(t, block.Tx, vars["--shiki-foreground"])
	require.Equal(t, block.Bg, vars["--shiki-background"])
}

// The two syntax tables are maintained independently; these assertions pin
// the known divergences so an accidental unification shows up in review.
func TestTablesDivergeFromVSCodeWhereShipped(t *testing.T) {
	t.Parallel()

	shikiFn, _ := TokenRules.Lookup("token-function")
	vscodeFn, _ := vscode.TokenRules.Lookup("function")
	require.Equal(t, []theme.Token{theme.Pr, theme.Ac2}, shikiFn.Fallbacks)
	require.Equal(t, []theme.Token{theme.Ac2, theme.Pr}, vscodeFn.Fallbacks)

	shikiKw, _ := TokenRules.Lookup("token-keyword")
	vscodeKw, _ := vscode.TokenRules.Lookup("keyword")
	require.Equal(t, vscodeKw.Fallbacks, shikiKw.Fallbacks)
}

func TestFallbackLiteralsPerMode(t *testing.T) {
	t.Parallel()

	var empty theme.Block
	require.Equal(t, "#d73a49", Convert(empty, theme.Light)["--shiki-token-keyword"])
	require.Equal(t, "#f97583", Convert(empty, theme.Dark)["--shiki-token-keyword"])
}

func TestRenderCSSIsStable(t *testing.T) {
	t.Parallel()

	light := Derive(themetest.LightBlock(), theme.Light)
	light.Colors["token-decorator"] = "#abcdef"
	th := Theme{Light: Assemble(light), Dark: Convert(themetest.DarkBlock(), theme.Dark)}

	css := string(RenderCSS(th))
	require.Equal(t, css, string(RenderCSS(th)))
	require.True(t, strings.HasPrefix(css, ":root {\n  --shiki-foreground: #000000;\n  --shiki-background: #ffffff;\n"))
	require.Contains(t, css, "  --shiki-token-decorator: #abcdef;\n")
	require.Equal(t, 2, strings.Count(css, "--shiki-token-link"))
}
