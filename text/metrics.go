package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// It is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

func (s *FontSource) metrics(size float64) (Metrics, error) {
	face, err := s.rasterFace(size)
	if err != nil {
		return Metrics{}, err
	}
	defer func() {
		_ = face.Close()
	}()

	fm := face.Metrics()
	m := Metrics{
		Ascent:    fixedToFloat(fm.Ascent),
		Descent:   fixedToFloat(fm.Descent),
		CapHeight: fixedToFloat(fm.CapHeight),
	}
	if m.Descent < 0 {
		m.Descent = -m.Descent
	}
	if gap := fixedToFloat(fm.Height) - m.Ascent - m.Descent; gap > 0 {
		m.LineGap = gap
	}
	return m, nil
}

// rasterFace creates an x/image face. The result is not safe for
// concurrent use and must be closed by the caller.
func (s *FontSource) rasterFace(size float64) (font.Face, error) {
	face, err := opentype.NewFace(s.raster, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, &FontParseError{Backend: "opentype", Err: err}
	}
	return face, nil
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
