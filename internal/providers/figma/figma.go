// Package figma splits a provider-native flat palette into Figma color and
// number variables.
package figma

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"

	"github.com/alexisbeaulieu97/tinte/internal/color"
	"github.com/alexisbeaulieu97/tinte/internal/palette"
)

const remBase = 16.0

// excluded keys are neither colors nor numbers in Figma's variable model.
var excluded = map[string]struct{}{
	palette.KeyFontSans:  {},
	palette.KeyFontSerif: {},
	palette.KeyFontMono:  {},
}

// numberTokens are emitted as FLOAT variables.
var numberTokens = map[string]struct{}{
	palette.KeyRadius:        {},
	palette.KeyRadiusSM:      {},
	palette.KeyRadiusMD:      {},
	palette.KeyRadiusLG:      {},
	palette.KeyRadiusXL:      {},
	palette.KeyLetterSpacing: {},
	palette.KeyShadowOpacity: {},
	palette.KeyShadowBlur:    {},
	palette.KeyShadowSpread:  {},
	palette.KeyShadowOffsetX: {},
	palette.KeyShadowOffsetY: {},
}

var numberPattern = regexp.MustCompile(`^(-?(?:\d+\.?\d*|\.\d+))(px|rem|em|%)?$`)

// Number is a FLOAT variable. Value is in pixels for px and rem inputs and
// unitless otherwise.
type Number struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Collection is one mode's worth of variables.
type Collection struct {
	Colors  map[string]color.RGBA `json:"colors"`
	Numbers map[string]Number     `json:"numbers"`
	// Skipped lists keys whose value could not be converted.
	Skipped []string `json:"skipped,omitempty"`
}

// IsNumberToken reports whether key is routed to the number bucket.
func IsNumberToken(key string) bool {
	_, ok := numberTokens[key]
	return ok
}

// ParseNumber parses CSS lengths such as "0.5rem", "3px", "-0.025em" or "0.1".
func ParseNumber(raw string) (Number, bool) {
	m := numberPattern.FindStringSubmatch(raw)
	if m == nil {
		return Number{}, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Number{}, false
	}
	unit := m[2]
	if unit == "rem" {
		value *= remBase
	}
	return Number{Raw: raw, Value: value, Unit: unit}, true
}

// Split converts p into color and number buckets. Colors become RGBA in
// [0,1]; shadow-color takes its alpha from shadow-opacity, given as a
// fraction or a percentage. An opacity outside [0,1] is skipped.
func Split(p palette.Palette) Collection {
	out := Collection{
		Colors:  make(map[string]color.RGBA),
		Numbers: make(map[string]Number),
	}

	alpha, alphaOK := opacity(p[palette.KeyShadowOpacity])
	if !alphaOK {
		alpha = 1.0
	}

	for _, key := range p.Keys() {
		value := p[key]
		if _, skip := excluded[key]; skip {
			continue
		}
		if IsNumberToken(key) {
			n, ok := ParseNumber(value)
			if key == palette.KeyShadowOpacity {
				ok = ok && alphaOK
			}
			if !ok {
				out.Skipped = append(out.Skipped, key)
				continue
			}
			out.Numbers[key] = n
			continue
		}
		a := 1.0
		if key == palette.KeyShadowColor {
			a = alpha
		}
		rgba, err := color.ToRGBA(value, a)
		if err != nil {
			out.Skipped = append(out.Skipped, key)
			continue
		}
		out.Colors[key] = rgba
	}
	return out
}

// opacity reads "0.1" or "10%" as an alpha in [0,1].
func opacity(raw string) (float64, bool) {
	n, ok := ParseNumber(raw)
	if !ok {
		return 0, false
	}
	switch n.Unit {
	case "":
	case "%":
		n.Value /= 100
	default:
		return 0, false
	}
	if n.Value < 0 || n.Value > 1 {
		return 0, false
	}
	return n.Value, true
}

// Document is the plugin payload: one collection per mode.
type Document struct {
	Name  string                `json:"name"`
	Modes map[string]Collection `json:"modes"`
}

// Marshal encodes doc as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ModeNames returns the document's modes sorted.
func (d Document) ModeNames() []string {
	names := make([]string, 0, len(d.Modes))
	for name := range d.Modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
