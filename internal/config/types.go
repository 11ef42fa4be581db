package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tinte/internal/override"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// CurrentVersion is written into new documents.
const CurrentVersion = "1.0.0"

// Document is a theme file: the canonical theme plus optional per-provider
// overrides and export settings.
type Document struct {
	Version     string         `yaml:"version" validate:"required,semver"`
	Name        string         `yaml:"name" validate:"required,min=1,max=100"`
	Description string         `yaml:"description,omitempty"`
	Light       theme.Block    `yaml:"light" validate:"-"`
	Dark        theme.Block    `yaml:"dark" validate:"-"`
	Overrides   map[string]any `yaml:"overrides,omitempty" validate:"-"`
	Export      Export         `yaml:"export,omitempty"`

	// Path is the file the document was loaded from, if any.
	Path string `yaml:"-" validate:"-"`
}

// Export holds defaults for the export command.
type Export struct {
	Providers []string `yaml:"providers,omitempty" validate:"omitempty,dive,provider_id"`
	OutDir    string   `yaml:"out_dir,omitempty"`
}

type rawDocument struct {
	Version     string            `yaml:"version"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Light       map[string]string `yaml:"light"`
	Dark        map[string]string `yaml:"dark"`
	Overrides   map[string]any    `yaml:"overrides"`
	Export      Export            `yaml:"export"`
}

// UnmarshalYAML decodes both blocks strictly, attributing errors to the mode.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var raw rawDocument
	if err := value.Decode(&raw); err != nil {
		return err
	}
	t, err := theme.FromMaps(raw.Light, raw.Dark)
	if err != nil {
		return err
	}
	*d = Document{
		Version:     raw.Version,
		Name:        raw.Name,
		Description: raw.Description,
		Light:       t.Light,
		Dark:        t.Dark,
		Overrides:   raw.Overrides,
		Export:      raw.Export,
	}
	return nil
}

// New returns a document for t at CurrentVersion.
func New(name string, t theme.Theme) *Document {
	return &Document{Version: CurrentVersion, Name: name, Light: t.Light, Dark: t.Dark}
}

// Theme returns the canonical theme.
func (d *Document) Theme() theme.Theme {
	return theme.Theme{Light: d.Light, Dark: d.Dark}
}

// WithTheme returns a copy of d holding t.
func (d *Document) WithTheme(t theme.Theme) *Document {
	next := *d
	next.Light = t.Light
	next.Dark = t.Dark
	return &next
}

// NormalizedOverrides decodes the raw overrides through n.
func (d *Document) NormalizedOverrides(n *override.Normalizer) override.NormalizedOverrides {
	if len(d.Overrides) == 0 {
		return override.NormalizedOverrides{}
	}
	return n.NormalizeAll(d.Overrides)
}

// MigrateOverrides rewrites the raw overrides in the current nested shape.
// Malformed fragments are dropped.
func (d *Document) MigrateOverrides(n *override.Normalizer) error {
	if len(d.Overrides) == 0 {
		return nil
	}
	data, err := json.Marshal(d.NormalizedOverrides(n))
	if err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Overrides = raw
	return nil
}
