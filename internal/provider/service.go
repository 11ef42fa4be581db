package provider

import (
	"github.com/alexisbeaulieu97/tinte/internal/logger"
	"github.com/alexisbeaulieu97/tinte/internal/override"
	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

// Service runs the conversion pipeline against a registry. The canonical
// theme is validated once per call; providers assume valid input.
type Service struct {
	registry *Registry
	logger   *logger.Logger
}

// NewService returns a Service over reg. log may be nil.
func NewService(reg *Registry, log *logger.Logger) *Service {
	return &Service{registry: reg, logger: log}
}

// Registry exposes the underlying registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Palette returns the merged derived values of provider id for one mode.
func (s *Service) Palette(id string, t theme.Theme, mode theme.Mode, ov override.ProviderOverride) (palette.Derived, error) {
	p, err := s.prepare(id, &t)
	if err != nil {
		return palette.Derived{}, err
	}
	return s.derive(p, t, mode, ov), nil
}

// Convert returns the single-mode native object of provider id.
func (s *Service) Convert(id, name string, t theme.Theme, mode theme.Mode, ov override.ProviderOverride) (any, error) {
	p, err := s.prepare(id, &t)
	if err != nil {
		return nil, err
	}
	return p.Native(name, mode, s.derive(p, t, mode, ov)), nil
}

// Export renders the export files of provider id for both modes.
func (s *Service) Export(id, name string, t theme.Theme, ov override.ProviderOverride) ([]File, error) {
	p, err := s.prepare(id, &t)
	if err != nil {
		return nil, err
	}
	return s.render(p, name, t, ov)
}

// ExportAll renders every provider in ids, each with its own override.
func (s *Service) ExportAll(ids []string, name string, t theme.Theme, overrides override.NormalizedOverrides) ([]File, error) {
	if err := theme.Validate(&t); err != nil {
		return nil, err
	}
	var files []File
	for _, id := range ids {
		p, err := s.registry.Get(id)
		if err != nil {
			return nil, err
		}
		out, err := s.render(p, name, t, overrides.Get(id))
		if err != nil {
			return nil, err
		}
		files = append(files, out...)
	}
	return files, nil
}

func (s *Service) prepare(id string, t *theme.Theme) (Provider, error) {
	p, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	if err := theme.Validate(t); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) derive(p Provider, t theme.Theme, mode theme.Mode, ov override.ProviderOverride) palette.Derived {
	base := p.Derive(t.Block(mode), mode)
	merged := override.Merge(base, mode, ov)
	s.logger.WithFields(map[string]any{
		"provider":  p.Metadata().ID,
		"mode":      string(mode),
		"tokens":    len(merged.Colors),
		"overrides": !ov.IsEmpty(),
	}).Debug("derived palette")
	return merged
}

func (s *Service) render(p Provider, name string, t theme.Theme, ov override.ProviderOverride) ([]File, error) {
	light := s.derive(p, t, theme.Light, ov)
	dark := s.derive(p, t, theme.Dark, ov)
	files, err := p.Render(name, light, dark)
	if err != nil {
		return nil, tinteerrors.NewProviderError(p.Metadata().ID, err)
	}
	return files, nil
}
