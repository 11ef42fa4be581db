package override

import (
	"github.com/alexisbeaulieu97/tinte/internal/palette"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// Merge layers ov onto the adapter baseline for mode. Precedence, lowest
// first: the baseline, then fonts/radius/letter spacing, then the per-mode
// palette. Baseline keys missing from the override are kept; override keys
// missing from the baseline are added; empty override values are ignored.
// base is not modified.
func Merge(base palette.Derived, mode theme.Mode, ov ProviderOverride) palette.Derived {
	out := base.Clone()
	if out.Colors == nil {
		out.Colors = make(palette.Palette)
	}

	if ov.Fonts != nil {
		out.Fonts = mergeFonts(out.Fonts, *ov.Fonts)
	}
	if ov.LetterSpacing != "" {
		out.LetterSpacing = ov.LetterSpacing
	}
	if ov.Radius != nil {
		out.RadiusScale = mergeScale(out.RadiusScale, ov.Radius.Scale)
		switch {
		case ov.Radius.Value != "":
			out.Radius = ov.Radius.Value
		case ov.Radius.Scale.LG != "":
			out.Radius = ov.Radius.Scale.LG
		}
	}

	if p := ov.Palette(mode); p != nil {
		for token, value := range p.Colors {
			if value != "" {
				out.Colors[token] = value
			}
		}
		if p.Shadow != nil {
			out.Shadow = out.Shadow.Merge(*p.Shadow)
		}
	}

	return out
}

func mergeFonts(base, delta palette.Fonts) palette.Fonts {
	if delta.Sans != "" {
		base.Sans = delta.Sans
	}
	if delta.Serif != "" {
		base.Serif = delta.Serif
	}
	if delta.Mono != "" {
		base.Mono = delta.Mono
	}
	return base
}

func mergeScale(base, delta palette.RadiusScale) palette.RadiusScale {
	if delta.SM != "" {
		base.SM = delta.SM
	}
	if delta.MD != "" {
		base.MD = delta.MD
	}
	if delta.LG != "" {
		base.LG = delta.LG
	}
	if delta.XL != "" {
		base.XL = delta.XL
	}
	return base
}
