// Package color implements the color math shared by every provider adapter:
// hex parsing, WCAG relative luminance and contrast, readable text selection
// and single-seed gradient derivation.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	tinteerrors "github.com/alexisbeaulieu97/tinte/pkg/errors"
)

const (
	White = "#ffffff"
	Black = "#000000"
)

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// RGB holds channels normalized to [0,1].
type RGB struct {
	R, G, B float64
}

// RGBA holds channels and alpha in [0,1], the layout Figma variables expect.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// IsHex reports whether value is a #RGB or #RRGGBB color.
func IsHex(value string) bool {
	return hexPattern.MatchString(value)
}

// ParseHex decodes a #RGB or #RRGGBB string.
func ParseHex(hex string) (RGB, error) {
	if !IsHex(hex) {
		return RGB{}, tinteerrors.NewColorError(hex, fmt.Errorf("expected #RGB or #RRGGBB"))
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return RGB{}, tinteerrors.NewColorError(hex, err)
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// Normalize expands shorthand and lowercases, e.g. "#ABC" becomes "#aabbcc".
func Normalize(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Hex(rgb), nil
}

// Hex encodes rgb as #rrggbb, clamping channels into range.
func Hex(rgb RGB) string {
	return colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped().Hex()
}

// Bytes returns the channels as 0-255 integers.
func (c RGB) Bytes() (r, g, b int) {
	r8, g8, b8 := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return int(r8), int(g8), int(b8)
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance applies the sRGB relative luminance formula.
func RelativeLuminance(rgb RGB) float64 {
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

// Luminance parses hex and returns its relative luminance.
func Luminance(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(rgb), nil
}

// ContrastRatio is symmetric in its arguments and never below 1.
func ContrastRatio(lum1, lum2 float64) float64 {
	lighter := math.Max(lum1, lum2)
	darker := math.Min(lum1, lum2)
	return (lighter + 0.05) / (darker + 0.05)
}

// BestTextColor picks pure white or pure black, whichever contrasts more with
// background. White wins ties.
func BestTextColor(background string) (string, error) {
	lum, err := Luminance(background)
	if err != nil {
		return "", err
	}
	whiteContrast := ContrastRatio(lum, 1)
	blackContrast := ContrastRatio(lum, 0)
	if whiteContrast >= blackContrast {
		return White, nil
	}
	return Black, nil
}

// ToRGBA converts hex to float channels with the supplied alpha, clamped to [0,1].
func ToRGBA(hex string, alpha float64) (RGBA, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: math.Max(0, math.Min(1, alpha))}, nil
}
