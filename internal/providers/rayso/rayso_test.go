package rayso

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

func TestNamesCoverEveryCanonicalToken(t *testing.T) {
	t.Parallel()

	require.Len(t, Names, len(theme.Tokens))
	seen := map[string]bool{}
	for _, tok := range theme.Tokens {
		name, ok := Names[tok]
		require.True(t, ok, tok)
		require.False(t, seen[name], "duplicate semantic name %s", name)
		seen[name] = true
	}
}

func TestConvertIsARenaming(t *testing.T) {
	t.Parallel()

	block := themetest.DarkBlock()
	got := Convert(block, theme.Dark)
	require.Equal(t, Block{
		Text:        block.Tx,
		Text2:       block.Tx2,
		Text3:       block.Tx3,
		Interface:   block.UI,
		Interface2:  block.UI2,
		Interface3:  block.UI3,
		Background:  block.Bg,
		Background2: block.Bg2,
		Primary:     block.Pr,
		Secondary:   block.Sc,
		Accent:      block.Ac1,
		Accent2:     block.Ac2,
		Accent3:     block.Ac3,
	}, got)
	require.Equal(t, got, Convert(block, theme.Light))
}

func TestMarshalIsDeterministic(t *testing.T) {
	t.Parallel()

	th := Theme{Light: Convert(themetest.LightBlock(), theme.Light), Dark: Convert(themetest.DarkBlock(), theme.Dark)}
	first, err := Marshal(th)
	require.NoError(t, err)
	second, err := Marshal(th)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Contains(t, string(first), `"interface_3": "#a1a1aa"`)
}
