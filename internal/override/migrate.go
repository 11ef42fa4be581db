package override

import "github.com/alexisbeaulieu97/tinte/internal/theme"

// Shape flags describe where a raw override keeps its data. An override may
// combine several flags.
type Shape uint8

const (
	// ShapeNested stores per-mode palettes under palettes.{mode}.
	ShapeNested Shape = 1 << iota
	// ShapeDirect stores per-mode palettes at the top level under {mode}.
	ShapeDirect
	// ShapeLegacyShadow carries a single top-level shadow for both modes.
	ShapeLegacyShadow
)

// Has reports whether flag is set.
func (s Shape) Has(flag Shape) bool {
	return s&flag != 0
}

// DetectShape classifies a raw override.
func DetectShape(raw map[string]any) Shape {
	var shape Shape
	if _, ok := asMap(raw["palettes"]); ok {
		shape |= ShapeNested
	}
	for _, mode := range theme.Modes {
		if _, ok := asMap(raw[string(mode)]); ok {
			shape |= ShapeDirect
		}
	}
	if _, ok := raw[shadowKey]; ok {
		shape |= ShapeLegacyShadow
	}
	return shape
}

// Migrate moves a legacy top-level shadow into palettes.light.shadow and
// palettes.dark.shadow. A mode that already has a nested shadow keeps it.
// The input is never modified and migrating twice equals migrating once.
func Migrate(raw map[string]any) map[string]any {
	out := deepCopyMap(raw)
	shadow, ok := out[shadowKey]
	if !ok {
		return out
	}

	rawPalettes, hasPalettes := out["palettes"]
	palettes, ok := asMap(rawPalettes)
	if hasPalettes && rawPalettes != nil && !ok {
		// Malformed palettes; left in place so Decode reports it.
		return out
	}
	if !ok {
		palettes = make(map[string]any, len(theme.Modes))
	}
	delete(out, shadowKey)
	for _, mode := range theme.Modes {
		key := string(mode)
		existing, present := palettes[key]
		modePalette, isMap := asMap(existing)
		if present && !isMap {
			// Malformed mode entry; Decode reports it.
			continue
		}
		if !present {
			modePalette = make(map[string]any, 1)
		}
		if _, has := modePalette[shadowKey]; has {
			palettes[key] = modePalette
			continue
		}
		modePalette[shadowKey] = deepCopyValue(shadow)
		palettes[key] = modePalette
	}
	out["palettes"] = palettes
	return out
}

func deepCopyMap(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return deepCopyMap(typed)
	case map[string]string:
		out := make(map[string]any, len(typed))
		for k, s := range typed {
			out[k] = s
		}
		return out
	case map[any]any:
		if m, ok := asMap(typed); ok {
			return deepCopyMap(m)
		}
		return typed
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}

// asMap normalizes the map types JSON and YAML decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, true
	case map[string]string:
		out := make(map[string]any, len(typed))
		for k, s := range typed {
			out[k] = s
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = item
		}
		return out, true
	default:
		return nil, false
	}
}
