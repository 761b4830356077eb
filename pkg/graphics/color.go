package graphics

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// ParseHex parses "#rrggbb" or "#aarrggbb" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, err
		}
		return FromColorful(c, 1), nil
	case 9:
		var a uint8
		if _, err := fmt.Sscanf(s[1:3], "%02x", &a); err != nil {
			return 0, fmt.Errorf("color: invalid alpha in %q", s)
		}
		c, err := colorful.Hex("#" + s[3:])
		if err != nil {
			return 0, err
		}
		return FromColorful(c, float64(a)/maxByte), nil
	default:
		return 0, fmt.Errorf("color: invalid hex %q", s)
	}
}

// Hex formats the color as "#aarrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%s", uint8(c>>24), c.Colorful().Hex()[1:])
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Colorful converts the RGB channels to a go-colorful color. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(uint8(c>>16)) / maxByte,
		G: float64(uint8(c>>8)) / maxByte,
		B: float64(uint8(c)) / maxByte,
	}
}

// FromColorful converts a go-colorful color plus alpha (0-1) to a Color.
func FromColorful(c colorful.Color, alpha float64) Color {
	r, g, b := c.Clamped().RGB255()
	return RGBA8(r, g, b, alpha01ToByte(alpha))
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
