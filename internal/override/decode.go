package override

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

// Decode turns a raw override (as read from a JSON column, a YAML document or
// editor state) into a ProviderOverride. It migrates legacy shapes first.
// Malformed fragments are skipped and reported as *errors.OverrideError; the
// returned override is always usable.
func Decode(provider string, raw any) (ProviderOverride, []error) {
	if raw == nil {
		return ProviderOverride{}, nil
	}
	obj, ok := asMap(raw)
	if !ok {
		return ProviderOverride{}, []error{issue(provider, "", "expected object, got %s", typeName(raw))}
	}

	d := decoder{provider: provider}
	migrated := Migrate(obj)

	var out ProviderOverride
	out.Fonts = d.fonts(migrated)
	out.Radius = d.radius(migrated)
	out.LetterSpacing = d.str(migrated, "letter_spacing", "letter_spacing")

	nested, _ := d.object(migrated, "palettes", "palettes")
	original, _ := asMap(obj["palettes"])
	palettes := Palettes{
		Light: d.modePalette(nested, migrated, theme.Light, hasObject(original, theme.Light)),
		Dark:  d.modePalette(nested, migrated, theme.Dark, hasObject(original, theme.Dark)),
	}
	if palettes.Light != nil || palettes.Dark != nil {
		out.Palettes = &palettes
	}

	return out, d.issues
}

// DecodeAll decodes a provider-keyed object of overrides.
func DecodeAll(raw any) (NormalizedOverrides, []error) {
	out := NormalizedOverrides{}
	if raw == nil {
		return out, nil
	}
	obj, ok := asMap(raw)
	if !ok {
		return out, []error{issue("", "", "expected object of providers, got %s", typeName(raw))}
	}

	ids := make([]string, 0, len(obj))
	for id := range obj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var issues []error
	for _, id := range ids {
		ov, errs := Decode(id, obj[id])
		issues = append(issues, errs...)
		out[id] = ov
	}
	return out, issues
}

type decoder struct {
	provider string
	issues   []error
}

func (d *decoder) report(path, format string, args ...any) {
	d.issues = append(d.issues, issue(d.provider, path, format, args...))
}

func (d *decoder) object(parent map[string]any, key, path string) (map[string]any, bool) {
	v, present := parent[key]
	if !present || v == nil {
		return nil, false
	}
	m, ok := asMap(v)
	if !ok {
		d.report(path, "expected object, got %s", typeName(v))
		return nil, false
	}
	return m, true
}

func (d *decoder) str(parent map[string]any, key, path string) string {
	v, present := parent[key]
	if !present || v == nil {
		return ""
	}
	s, ok := scalar(v)
	if !ok {
		d.report(path, "expected string, got %s", typeName(v))
		return ""
	}
	return s
}

func (d *decoder) fonts(raw map[string]any) *palette.Fonts {
	m, ok := d.object(raw, "fonts", "fonts")
	if !ok {
		return nil
	}
	fonts := palette.Fonts{
		Sans:  d.str(m, "sans", "fonts.sans"),
		Serif: d.str(m, "serif", "fonts.serif"),
		Mono:  d.str(m, "mono", "fonts.mono"),
	}
	if fonts == (palette.Fonts{}) {
		return nil
	}
	return &fonts
}

func (d *decoder) radius(raw map[string]any) *Radius {
	v, present := raw["radius"]
	if !present || v == nil {
		return nil
	}
	if s, ok := scalar(v); ok {
		if s == "" {
			return nil
		}
		return &Radius{Value: s}
	}
	m, ok := asMap(v)
	if !ok {
		d.report("radius", "expected string or object, got %s", typeName(v))
		return nil
	}
	scale := palette.RadiusScale{
		SM: d.str(m, "sm", "radius.sm"),
		MD: d.str(m, "md", "radius.md"),
		LG: d.str(m, "lg", "radius.lg"),
		XL: d.str(m, "xl", "radius.xl"),
	}
	if scale.IsZero() {
		return nil
	}
	return &Radius{Scale: scale}
}

// hasObject reports whether palettes holds an object for mode.
func hasObject(palettes map[string]any, mode theme.Mode) bool {
	_, ok := asMap(palettes[string(mode)])
	return ok
}

// modePalette reads palettes.{mode}. The top-level {mode} is only consulted
// when the input had no palettes.{mode} object; a shadow that Migrate moved
// into palettes.{mode} is then combined with it.
func (d *decoder) modePalette(nested, raw map[string]any, mode theme.Mode, explicit bool) *PaletteOverride {
	key := string(mode)
	var fromNested, fromDirect map[string]any
	if nested != nil {
		fromNested, _ = d.object(nested, key, "palettes."+key)
	}
	if !explicit {
		fromDirect, _ = d.object(raw, key, key)
	}

	if fromNested == nil && fromDirect == nil {
		return nil
	}

	out := &PaletteOverride{Colors: make(map[string]string)}
	d.fillPalette(out, fromDirect, key)
	d.fillPalette(out, fromNested, "palettes."+key)
	if out.IsEmpty() {
		return nil
	}
	if len(out.Colors) == 0 {
		out.Colors = nil
	}
	return out
}

func (d *decoder) fillPalette(dst *PaletteOverride, src map[string]any, path string) {
	for _, token := range sortedKeys(src) {
		value := src[token]
		if token == shadowKey {
			if shadow := d.shadow(value, path+".shadow"); shadow != nil {
				if dst.Shadow == nil {
					dst.Shadow = shadow
				} else {
					merged := dst.Shadow.Merge(*shadow)
					dst.Shadow = &merged
				}
			}
			continue
		}
		s, ok := scalar(value)
		if !ok {
			d.report(path+"."+token, "expected string, got %s", typeName(value))
			continue
		}
		if s == "" {
			continue
		}
		dst.Colors[token] = s
	}
}

func (d *decoder) shadow(v any, path string) *palette.Shadow {
	if v == nil {
		return nil
	}
	m, ok := asMap(v)
	if !ok {
		d.report(path, "expected object, got %s", typeName(v))
		return nil
	}
	shadow := palette.Shadow{
		Color:   d.str(m, "color", path+".color"),
		Opacity: d.str(m, "opacity", path+".opacity"),
		Blur:    d.str(m, "blur", path+".blur"),
		Spread:  d.str(m, "spread", path+".spread"),
		OffsetX: d.str(m, "offset_x", path+".offset_x"),
		OffsetY: d.str(m, "offset_y", path+".offset_y"),
	}
	if shadow.IsZero() {
		return nil
	}
	return &shadow
}

// scalar accepts strings and numbers; numeric shadow fields are common in
// persisted data.
func scalar(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	default:
		return "", false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	default:
		if _, ok := asMap(v); ok {
			return "object"
		}
		return fmt.Sprintf("%T", v)
	}
}

func issue(provider, path, format string, args ...any) error {
	return tinteerrors.NewOverrideError(provider, path, fmt.Sprintf(format, args...))
}
