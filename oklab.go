package bivariate

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// mat3 is a row-major 3x3 matrix.
type mat3 [3][3]float64

func (m *mat3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// inverse returns the inverse of an invertible m.
func (m *mat3) inverse() mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	co00, co01, co02 := e*i-f*h, f*g-d*i, d*h-e*g
	det := a*co00 + b*co01 + c*co02
	return mat3{
		{co00 / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{co01 / det, (a*i - c*g) / det, (c*d - a*f) / det},
		{co02 / det, (b*g - a*h) / det, (a*e - b*d) / det},
	}
}

// OkLab matrices (Björn Ottosson, 2020): linear sRGB to cone response,
// and cube-rooted cone response to Lab. The inverses are derived from
// the same constants, so a round trip is exact up to rounding.
var (
	linearToLMS = mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToLab = mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	lmsToLinear = linearToLMS.inverse()
	labToLMS    = lmsToLab.inverse()
)

// ToPerceptual converts a device colour to OkLab.
func ToPerceptual(c Color) Lab {
	r, g, b := c.colorful().LinearRgb()
	l, m, s := linearToLMS.apply(r, g, b)
	L, A, B := lmsToLab.apply(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
	return Lab{L: L, A: A, B: B}
}

// ToDevice converts an OkLab colour back to sRGB.
// Out-of-gamut points are expected near blend boundaries; each channel is
// clamped to [0, 1] without reporting an error.
func ToDevice(p Lab) Color {
	l, m, s := labToLMS.apply(p.L, p.A, p.B)
	r, g, b := lmsToLinear.apply(l*l*l, m*m*m, s*s*s)
	c := colorful.LinearRgb(r, g, b).Clamped()
	return Color{R: c.R, G: c.G, B: c.B}
}
