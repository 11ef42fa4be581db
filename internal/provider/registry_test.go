package provider

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

type stubProvider struct {
	meta      Metadata
	renderErr error
}

func (s stubProvider) Metadata() Metadata { return s.meta }

func (s stubProvider) Derive(block theme.Block, _ theme.Mode) palette.Derived {
	return palette.Derived{Colors: palette.Palette{"bg": block.Bg}}
}

func (s stubProvider) Native(_ string, _ theme.Mode, d palette.Derived) any {
	return d.Colors
}

func (s stubProvider) Render(_ string, _, _ palette.Derived) ([]File, error) {
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	return []File{{Name: s.meta.ID + ".txt", Content: []byte("ok")}}, nil
}

func TestDefaultRegistryListsBuiltins(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry(nil)
	require.Equal(t, []string{Figma, Rayso, Shadcn, Shiki, VSCode}, reg.IDs())

	list := reg.List()
	require.Len(t, list, 5)
	for _, meta := range list {
		require.NoError(t, meta.Validate())
	}
	require.Equal(t, Figma, list[0].ID)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	p := stubProvider{meta: Metadata{ID: "stub", Name: "Stub"}}
	require.NoError(t, reg.Register(p))
	require.ErrorContains(t, reg.Register(p), "already registered")
	require.True(t, reg.Has("stub"))
}

func TestRegistryRejectsInvalidMetadata(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.Error(t, reg.Register(nil))
	require.ErrorContains(t, reg.Register(stubProvider{meta: Metadata{Name: "x"}}), "non-empty ID")
	require.ErrorContains(t, reg.Register(stubProvider{meta: Metadata{ID: "Bad ID", Name: "x"}}), "invalid ID")
	require.ErrorContains(t, reg.Register(stubProvider{meta: Metadata{ID: "ok"}}), "requires Name")
	require.Empty(t, reg.IDs())
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()

	_, err := NewDefaultRegistry(nil).Get("sublime")
	var notFound ErrNotFound
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "sublime", notFound.ID)
}

func TestSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Flexoki":         "flexoki",
		"My Cool Theme!":  "my-cool-theme",
		"  --Tokyo Night": "tokyo-night",
		"???":             "theme",
	}
	for in, want := range cases {
		require.Equal(t, want, Slug(in), in)
	}
}
