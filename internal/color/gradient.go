package color

import "fmt"

const (
	gradientDarken  = 30
	gradientLighten = 20
)

// Gradient is a three-stop gradient synthesized from one seed color.
type Gradient struct {
	Darker  string `json:"darker"`
	Base    string `json:"base"`
	Lighter string `json:"lighter"`
}

// DeriveGradient shifts every channel down by 30 and up by 20. Channels
// saturate at 0 and 255. Base is returned as given.
func DeriveGradient(hex string) (Gradient, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Gradient{}, err
	}
	r, g, b := rgb.Bytes()
	return Gradient{
		Darker:  encodeBytes(clampByte(r-gradientDarken), clampByte(g-gradientDarken), clampByte(b-gradientDarken)),
		Base:    hex,
		Lighter: encodeBytes(clampByte(r+gradientLighten), clampByte(g+gradientLighten), clampByte(b+gradientLighten)),
	}, nil
}

// CSS renders the gradient as a linear-gradient() value.
func (g Gradient) CSS(angle int) string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 50%%, %s 100%%)", angle, g.Darker, g.Base, g.Lighter)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func encodeBytes(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
