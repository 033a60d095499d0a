package bivariate

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a device-space (sRGB) colour.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Lab is a colour in the perceptual OkLab space.
// L is lightness in [0, 1]; A and B are the green-red and blue-yellow
// opponent axes. Lab values may lie outside the sRGB gamut.
type Lab struct {
	L, A, B float64
}

// RGB creates a colour from sRGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(nc.R) / 65535,
		G: float64(nc.G) / 65535,
		B: float64(nc.B) / 65535,
	}
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, invalidParam("hex colour", s, err.Error())
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for static colour tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

// Hex returns the colour as a 6-digit hex string such as "#1fdcc7".
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements the color.Color interface. Colours are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamped()
	return uint32(cc.R*65535 + 0.5), uint32(cc.G*65535 + 0.5), uint32(cc.B*65535 + 0.5), 0xffff
}

// NRGBA returns the 8-bit representation of c.
func (c Color) NRGBA() color.NRGBA {
	cc := c.Clamped()
	return color.NRGBA{
		R: uint8(cc.R*255 + 0.5),
		G: uint8(cc.G*255 + 0.5),
		B: uint8(cc.B*255 + 0.5),
		A: 255,
	}
}

// Clamped returns c with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Validate reports whether every channel lies in [0, 1].
func (c Color) Validate() error {
	for _, v := range [...]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return invalidParam("colour", fmt.Sprintf("(%g, %g, %g)", c.R, c.G, c.B), "channels must be within [0, 1]")
		}
	}
	return nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Lerp performs linear interpolation between two perceptual colours.
// t is not clamped, so values outside [0, 1] extrapolate.
func (p Lab) Lerp(other Lab, t float64) Lab {
	return Lab{
		L: p.L + (other.L-p.L)*t,
		A: p.A + (other.A-p.A)*t,
		B: p.B + (other.B-p.B)*t,
	}
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// HexColors encodes colours as 6-digit hex strings, the format consumed
// by map renderers.
func HexColors(colors []Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

// Common colours used as corner defaults.
var (
	nearWhite = RGB(0.98, 0.98, 0.96)
	nearBlack = RGB(0.10, 0.10, 0.12)
)
