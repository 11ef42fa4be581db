// Package override decodes, migrates and applies provider-scoped override
// deltas. Overrides never replace adapter output: absent keys keep the
// derived value.
package override

import (
	"encoding/json"
	"sort"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

const shadowKey = "shadow"

// PaletteOverride is a partial per-mode palette. On the wire it is a flat
// object of token to color, plus an optional "shadow" object.
type PaletteOverride struct {
	Colors map[string]string
	Shadow *palette.Shadow
}

// IsEmpty reports whether the override carries nothing.
func (p *PaletteOverride) IsEmpty() bool {
	return p == nil || (len(p.Colors) == 0 && p.Shadow == nil)
}

// MarshalJSON flattens colors and shadow into one object.
func (p PaletteOverride) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Colors)+1)
	for k, v := range p.Colors {
		out[k] = v
	}
	if p.Shadow != nil {
		out[shadowKey] = p.Shadow
	}
	return json.Marshal(out)
}

// Palettes holds the per-mode deltas.
type Palettes struct {
	Light *PaletteOverride `json:"light,omitempty"`
	Dark  *PaletteOverride `json:"dark,omitempty"`
}

// Radius is either a single CSS length or a per-size scale.
type Radius struct {
	Value string
	Scale palette.RadiusScale
}

// MarshalJSON writes a string when Value is set, otherwise the scale object.
func (r Radius) MarshalJSON() ([]byte, error) {
	if r.Value != "" {
		return json.Marshal(r.Value)
	}
	return json.Marshal(r.Scale)
}

// ProviderOverride is the normalized delta for one provider. Marshalling
// always produces the current nested shape.
type ProviderOverride struct {
	Palettes      *Palettes      `json:"palettes,omitempty"`
	Fonts         *palette.Fonts `json:"fonts,omitempty"`
	Radius        *Radius        `json:"radius,omitempty"`
	LetterSpacing string         `json:"letter_spacing,omitempty"`
}

// Palette returns the delta for mode, or nil.
func (o ProviderOverride) Palette(mode theme.Mode) *PaletteOverride {
	if o.Palettes == nil {
		return nil
	}
	if mode == theme.Dark {
		return o.Palettes.Dark
	}
	return o.Palettes.Light
}

// WithColor returns a copy of o with one token set for mode. The receiver is
// not modified.
func (o ProviderOverride) WithColor(mode theme.Mode, token, value string) ProviderOverride {
	current := o.Palette(mode)
	next := &PaletteOverride{Colors: make(map[string]string)}
	if current != nil {
		for k, v := range current.Colors {
			next.Colors[k] = v
		}
		next.Shadow = current.Shadow
	}
	next.Colors[token] = value

	palettes := Palettes{}
	if o.Palettes != nil {
		palettes = *o.Palettes
	}
	if mode == theme.Dark {
		palettes.Dark = next
	} else {
		palettes.Light = next
	}
	o.Palettes = &palettes
	return o
}

// IsEmpty reports whether the override changes nothing.
func (o ProviderOverride) IsEmpty() bool {
	return o.Palette(theme.Light).IsEmpty() &&
		o.Palette(theme.Dark).IsEmpty() &&
		o.Fonts == nil &&
		o.Radius == nil &&
		o.LetterSpacing == ""
}

// UnmarshalJSON accepts every supported shape, legacy included. Malformed
// fragments are dropped, matching Decode.
func (o *ProviderOverride) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, _ := Decode("", raw)
	*o = decoded
	return nil
}

// NormalizedOverrides holds at most one override per provider id.
type NormalizedOverrides map[string]ProviderOverride

// Get returns the override for provider, or the zero override.
func (n NormalizedOverrides) Get(provider string) ProviderOverride {
	if n == nil {
		return ProviderOverride{}
	}
	return n[provider]
}

// Providers lists provider ids sorted.
func (n NormalizedOverrides) Providers() []string {
	ids := make([]string, 0, len(n))
	for id := range n {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
