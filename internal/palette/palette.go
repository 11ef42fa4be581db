// Package palette holds the flat, provider-vocabulary output of an adapter
// together with the theme-level fields (fonts, radius, shadow) that overrides
// may replace.
package palette

import (
	"sort"

	"github.com/samber/lo"
)

// Palette maps a provider token (e.g. "primary-foreground") to a color.
type Palette map[string]string

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the token names sorted lexically.
func (p Palette) Keys() []string {
	keys := lo.Keys(p)
	sort.Strings(keys)
	return keys
}

// Fonts is the font triple a provider emits.
type Fonts struct {
	Sans  string `json:"sans,omitempty" yaml:"sans,omitempty"`
	Serif string `json:"serif,omitempty" yaml:"serif,omitempty"`
	Mono  string `json:"mono,omitempty" yaml:"mono,omitempty"`
}

// Shadow describes a box shadow in CSS units.
type Shadow struct {
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity string `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Blur    string `json:"blur,omitempty" yaml:"blur,omitempty"`
	Spread  string `json:"spread,omitempty" yaml:"spread,omitempty"`
	OffsetX string `json:"offset_x,omitempty" yaml:"offset_x,omitempty"`
	OffsetY string `json:"offset_y,omitempty" yaml:"offset_y,omitempty"`
}

// IsZero reports whether no field is set.
func (s Shadow) IsZero() bool {
	return s == Shadow{}
}

// Merge returns s with every non-empty field of delta applied.
func (s Shadow) Merge(delta Shadow) Shadow {
	s.Color = lo.Ternary(delta.Color != "", delta.Color, s.Color)
	s.Opacity = lo.Ternary(delta.Opacity != "", delta.Opacity, s.Opacity)
	s.Blur = lo.Ternary(delta.Blur != "", delta.Blur, s.Blur)
	s.Spread = lo.Ternary(delta.Spread != "", delta.Spread, s.Spread)
	s.OffsetX = lo.Ternary(delta.OffsetX != "", delta.OffsetX, s.OffsetX)
	s.OffsetY = lo.Ternary(delta.OffsetY != "", delta.OffsetY, s.OffsetY)
	return s
}

// RadiusScale holds per-size radii.
type RadiusScale struct {
	SM string `json:"sm,omitempty" yaml:"sm,omitempty"`
	MD string `json:"md,omitempty" yaml:"md,omitempty"`
	LG string `json:"lg,omitempty" yaml:"lg,omitempty"`
	XL string `json:"xl,omitempty" yaml:"xl,omitempty"`
}

// IsZero reports whether no size is set.
func (r RadiusScale) IsZero() bool {
	return r == RadiusScale{}
}

// Derived is the adapter baseline for one mode. Colors is always fully
// populated for the provider's vocabulary.
type Derived struct {
	Colors        Palette
	Fonts         Fonts
	Radius        string
	RadiusScale   RadiusScale
	LetterSpacing string
	Shadow        Shadow
}

// Clone deep-copies the color map.
func (d Derived) Clone() Derived {
	d.Colors = d.Colors.Clone()
	return d
}

// Flat token names for theme-level fields.
const (
	KeyFontSans      = "font-sans"
	KeyFontSerif     = "font-serif"
	KeyFontMono      = "font-mono"
	KeyRadius        = "radius"
	KeyRadiusSM      = "radius-sm"
	KeyRadiusMD      = "radius-md"
	KeyRadiusLG      = "radius-lg"
	KeyRadiusXL      = "radius-xl"
	KeyLetterSpacing = "letter-spacing"
	KeyShadowColor   = "shadow-color"
	KeyShadowOpacity = "shadow-opacity"
	KeyShadowBlur    = "shadow-blur"
	KeyShadowSpread  = "shadow-spread"
	KeyShadowOffsetX = "shadow-offset-x"
	KeyShadowOffsetY = "shadow-offset-y"
)

// Flatten returns colors plus every non-empty theme-level field under its
// flat key. This is the shape the Figma splitter and CSS renderers consume.
func (d Derived) Flatten() Palette {
	out := d.Colors.Clone()
	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set(KeyFontSans, d.Fonts.Sans)
	set(KeyFontSerif, d.Fonts.Serif)
	set(KeyFontMono, d.Fonts.Mono)
	set(KeyRadius, d.Radius)
	set(KeyRadiusSM, d.RadiusScale.SM)
	set(KeyRadiusMD, d.RadiusScale.MD)
	set(KeyRadiusLG, d.RadiusScale.LG)
	set(KeyRadiusXL, d.RadiusScale.XL)
	set(KeyLetterSpacing, d.LetterSpacing)
	set(KeyShadowColor, d.Shadow.Color)
	set(KeyShadowOpacity, d.Shadow.Opacity)
	set(KeyShadowBlur, d.Shadow.Blur)
	set(KeyShadowSpread, d.Shadow.Spread)
	set(KeyShadowOffsetX, d.Shadow.OffsetX)
	set(KeyShadowOffsetY, d.Shadow.OffsetY)
	return out
}

// Ordered lists the keys of p: first those in preferred (in that order),
// then any remaining keys sorted lexically.
func (p Palette) Ordered(preferred []string) []string {
	out := make([]string, 0, len(p))
	seen := make(map[string]struct{}, len(preferred))
	for _, key := range preferred {
		if _, ok := p[key]; ok {
			if _, dup := seen[key]; !dup {
				out = append(out, key)
				seen[key] = struct{}{}
			}
		}
	}
	rest := lo.Filter(p.Keys(), func(key string, _ int) bool {
		_, ok := seen[key]
		return !ok
	})
	return append(out, rest...)
}

// ThemeLevelKeys lists the flat theme-level keys in rendering order.
var ThemeLevelKeys = []string{
	KeyFontSans, KeyFontSerif, KeyFontMono,
	KeyRadius, KeyRadiusSM, KeyRadiusMD, KeyRadiusLG, KeyRadiusXL,
	KeyLetterSpacing,
	KeyShadowColor, KeyShadowOpacity, KeyShadowBlur, KeyShadowSpread, KeyShadowOffsetX, KeyShadowOffsetY,
}
