package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/override"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

const validDocument = `version: "1.0"
name: "Test Theme"
description: "Sample document for parser tests"
light:
  bg: "#ffffff"
  bg_2: "#f4f4f5"
  ui: "#e4e4e7"
  ui_2: "#d4d4d8"
  ui_3: "#a1a1aa"
  tx: "#000000"
  tx_2: "#3f3f46"
  tx_3: "#71717a"
  pr: "#2563eb"
  sc: "#7c3aed"
  ac_1: "#16a34a"
  ac_2: "#ea580c"
  ac_3: "#db2777"
dark:
  bg: "#09090b"
  bg_2: "#18181b"
  ui: "#27272a"
  ui_2: "#3f3f46"
  ui_3: "#52525b"
  tx: "#fafafa"
  tx_2: "#d4d4d8"
  tx_3: "#a1a1aa"
  pr: "#60a5fa"
  sc: "#a78bfa"
  ac_1: "#4ade80"
  ac_2: "#fb923c"
  ac_3: "#f472b6"
overrides:
  shadcn:
    shadow:
      color: "#000"
      opacity: "0.1"
    palettes:
      light:
        primary: "#ff0000"
export:
  providers: [shadcn, vscode]
  out_dir: ./dist
`

func TestParseDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validDocument,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Equal(t, "Test Theme", doc.Name)
				require.Equal(t, themetest.Theme(), doc.Theme())
				require.Equal(t, []string{"shadcn", "vscode"}, doc.Export.Providers)
				require.Equal(t, "./dist", doc.Export.OutDir)
				require.Contains(t, doc.Overrides, "shadcn")
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "version: \"1.0\"\nname: [unterminated\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *tinteerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "theme.yaml", parseErr.Path)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "missing dark block is an invalid theme",
			contents: `version: "1.0"
name: "Half"
light: {bg: "#fff", bg_2: "#fff", ui: "#fff", ui_2: "#fff", ui_3: "#fff", tx: "#000", tx_2: "#000", tx_3: "#000", pr: "#00f", sc: "#0f0", ac_1: "#f00", ac_2: "#ff0", ac_3: "#0ff"}
`,
			assert: func(t *testing.T, doc *Document, err error) {
				var invalid *tinteerrors.InvalidThemeError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, "dark", invalid.Mode)
			},
		},
		{
			name:     "bad version returns validation error",
			contents: replace(validDocument, `version: "1.0"`, `version: "beta"`),
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *tinteerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "unknown export provider returns validation error",
			contents: replace(validDocument, `providers: [shadcn, vscode]`, `providers: [shadcn, sublime]`),
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *tinteerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "export.providers[1]", validationErr.Field)
				require.Contains(t, validationErr.Message, "sublime")
			},
		},
		{
			name:     "non hex token is an invalid theme",
			contents: replace(validDocument, `pr: "#60a5fa"`, `pr: "blue"`),
			assert: func(t *testing.T, doc *Document, err error) {
				var invalid *tinteerrors.InvalidThemeError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, "dark", invalid.Mode)
				require.Equal(t, "pr", invalid.Token)
				require.Equal(t, "blue", invalid.Value)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse("theme.yaml", []byte(tc.contents))
			tc.assert(t, doc, err)
		})
	}
}

func TestParseRejectsUnknownToken(t *testing.T) {
	t.Parallel()

	contents := replace(validDocument, `  ac_3: "#db2777"`, "  ac_3: \"#db2777\"\n  ac_4: \"#000000\"")
	_, err := Parse("theme.yaml", []byte(contents))

	var invalid *tinteerrors.InvalidThemeError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "light", invalid.Mode)
	require.Equal(t, "ac_4", invalid.Token)
}

func TestParseAcceptsJSON(t *testing.T) {
	t.Parallel()

	contents := `{"version":"1.0.0","name":"Json","light":` + blockJSON(themetest.LightBlock()) + `,"dark":` + blockJSON(themetest.DarkBlock()) + `}`
	doc, err := Parse("theme.json", []byte(contents))
	require.NoError(t, err)
	require.Equal(t, themetest.Theme(), doc.Theme())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *tinteerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	doc := New("Round Trip", themetest.Theme())
	doc.Export.Providers = []string{"figma"}
	doc.Overrides = map[string]any{"rayso": map[string]any{"dark": map[string]any{"primary": "#123456"}}}

	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, loaded.Path)
	require.Equal(t, doc.Theme(), loaded.Theme())
	require.Equal(t, CurrentVersion, loaded.Version)
	require.Equal(t, []string{"figma"}, loaded.Export.Providers)
	require.Equal(t, "#123456", loaded.NormalizedOverrides(nil).Get("rayso").Palette(theme.Dark).Colors["primary"])

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	bad := themetest.Theme()
	bad = bad.WithBlock(theme.Light, bad.Light.With(theme.Bg, "white"))

	err := Save(path, New("Bad", bad))
	var invalid *tinteerrors.InvalidThemeError
	require.ErrorAs(t, err, &invalid)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestMigrateOverridesWritesNestedShape(t *testing.T) {
	t.Parallel()

	doc, err := Parse("theme.yaml", []byte(validDocument))
	require.NoError(t, err)

	n := override.NewNormalizer(nil)
	require.NoError(t, doc.MigrateOverrides(n))

	shadcn := doc.Overrides["shadcn"].(map[string]any)
	require.NotContains(t, shadcn, "shadow")
	palettes := shadcn["palettes"].(map[string]any)
	light := palettes["light"].(map[string]any)
	require.Equal(t, "#ff0000", light["primary"])
	require.Equal(t, map[string]any{"color": "#000", "opacity": "0.1"}, light["shadow"])
	require.Contains(t, palettes["dark"].(map[string]any), "shadow")

	before := doc.NormalizedOverrides(n)
	require.NoError(t, doc.MigrateOverrides(n))
	require.Equal(t, before, doc.NormalizedOverrides(n))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 12, extractLine(errString("yaml: line 12: did not find expected key")))
	require.Equal(t, 0, extractLine(errString("something else")))
}

type errString string

func (e errString) Error() string { return string(e) }
