package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/config"
	"github.com/alexisbeaulieu97/tinte/internal/theme/themetest"
)

// executeCommand runs a fresh root command and returns its combined output.
func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeThemeFile(t *testing.T, overrides map[string]any) string {
	t.Helper()
	doc := config.New("Fixture", themetest.Theme())
	doc.Overrides = overrides
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, config.Save(path, doc))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
