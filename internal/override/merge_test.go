package override_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/logger"
	"github.com/alexisbeaulieu97/tinte/internal/override"
	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/providers/shadcn"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

func TestMergeReplacesOnlyOverriddenToken(t *testing.T) {
	t.Parallel()

	base := shadcn.Derive(themetest.LightBlock(), theme.Light)
	ov := override.NormalizedOverrides{}.Get("shadcn").WithColor(theme.Light, "primary", "#ff0000")

	merged := override.Merge(base, theme.Light, ov)

	require.Equal(t, "#ff0000", merged.Colors["primary"])
	for key, value := range base.Colors {
		if key == "primary" {
			continue
		}
		require.Equal(t, value, merged.Colors[key], key)
	}
	require.Len(t, merged.Colors, len(base.Colors))
	require.Equal(t, "#2563eb", base.Colors["primary"], "baseline must not be mutated")
}

func TestMergeIgnoresOtherMode(t *testing.T) {
	t.Parallel()

	base := shadcn.Derive(themetest.DarkBlock(), theme.Dark)
	ov := override.ProviderOverride{}.WithColor(theme.Light, "primary", "#ff0000")

	require.Equal(t, base, override.Merge(base, theme.Dark, ov))
}

func TestMergeIsAdditive(t *testing.T) {
	t.Parallel()

	base := shadcn.Derive(themetest.LightBlock(), theme.Light)
	ov := override.ProviderOverride{}.
		WithColor(theme.Light, "brand", "#123456").
		WithColor(theme.Light, "ring", "#abcdef")

	merged := override.Merge(base, theme.Light, ov)

	require.Equal(t, "#123456", merged.Colors["brand"])
	require.Equal(t, "#abcdef", merged.Colors["ring"])
	require.Len(t, merged.Colors, len(base.Colors)+1)
}

func TestMergeIgnoresEmptyValues(t *testing.T) {
	t.Parallel()

	base := shadcn.Derive(themetest.LightBlock(), theme.Light)
	ov := override.ProviderOverride{}.WithColor(theme.Light, "primary", "")

	require.Equal(t, base.Colors, override.Merge(base, theme.Light, ov).Colors)
}

func TestMergeRadiusStringWinsOverScale(t *testing.T) {
	t.Parallel()

	base := shadcn.Derive(themetest.LightBlock(), theme.Light)

	merged := override.Merge(base, theme.Light, override.ProviderOverride{
		Radius: &override.Radius{Value: "1rem"},
	})
	require.Equal(t, "1rem", merged.Radius)
	require.True(t, merged.RadiusScale.IsZero())

	merged = override.Merge(base, theme.Light, override.ProviderOverride{
		Radius: &override.Radius{Scale: palette.RadiusScale{SM: "2px", LG: "10px"}},
	})
	require.Equal(t, "10px", merged.Radius)
	require.Equal(t, palette.RadiusScale{SM: "2px", LG: "10px"}, merged.RadiusScale)

	merged = override.Merge(base, theme.Light, override.ProviderOverride{
		Radius: &override.Radius{Scale: palette.RadiusScale{SM: "2px"}},
	})
	require.Equal(t, shadcn.DefaultRadius, merged.Radius)
	require.Equal(t, "2px", merged.Flatten()[palette.KeyRadiusSM])
}

func TestMergeFontsAndLetterSpacing(t *testing.T) {
	t.Parallel()

	base := shadcn.Derive(themetest.LightBlock(), theme.Light)
	merged := override.Merge(base, theme.Light, override.ProviderOverride{
		Fonts:         &palette.Fonts{Mono: "Berkeley Mono"},
		LetterSpacing: "0.02em",
	})

	require.Equal(t, "Berkeley Mono", merged.Fonts.Mono)
	require.Equal(t, shadcn.DefaultFontSans, merged.Fonts.Sans)
	require.Equal(t, "0.02em", merged.LetterSpacing)
}

func TestMergeMigratedLegacyShadow(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"shadow":{"color":"#000","opacity":"0.1"},"palettes":{}}`), &raw))

	ov, issues := override.Decode("shadcn", raw)
	require.Empty(t, issues)

	for _, mode := range theme.Modes {
		base := shadcn.Derive(themetest.Theme().Block(mode), mode)
		merged := override.Merge(base, mode, ov)

		require.Equal(t, "#000", merged.Shadow.Color)
		require.Equal(t, "0.1", merged.Shadow.Opacity)
		require.Equal(t, shadcn.DefaultShadow.Blur, merged.Shadow.Blur)
		require.Equal(t, base.Colors, merged.Colors)
	}
}

func TestNormalizerLogsRecoveredIssues(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	n := override.NewNormalizer(log)
	ov := n.Normalize("shadcn", map[string]any{
		"palettes": map[string]any{"light": map[string]any{"primary": "#ff0000"}, "dark": "broken"},
	})
	require.Equal(t, "#ff0000", ov.Palette(theme.Light).Colors["primary"])
	require.Nil(t, ov.Palette(theme.Dark))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "shadcn", entry["provider"])
	require.Contains(t, entry["error"], "palettes.dark")
}

func TestNormalizerWithoutLogger(t *testing.T) {
	t.Parallel()

	n := override.NewNormalizer(nil)
	all := n.NormalizeAll(map[string]any{"vscode": "garbage"})
	require.True(t, all.Get("vscode").IsEmpty())

	base := shadcn.Derive(themetest.LightBlock(), theme.Light)
	require.Equal(t, base, n.Apply(base, theme.Light, all.Get("vscode")))
}
