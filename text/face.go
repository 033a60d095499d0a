package text

import "math"

// Face is a FontSource at a fixed pixel size. It measures, wraps and draws
// single-style label text. Face is safe for concurrent use.
type Face struct {
	source   *FontSource
	size     float64
	metrics  Metrics
	advances *lru[string, float64]
}

// DefaultFace returns the embedded Go Regular font at the given size.
func DefaultFace(size float64) (*Face, error) {
	src, err := DefaultSource()
	if err != nil {
		return nil, err
	}
	return src.Face(size)
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics { return f.metrics }

// LineHeight is shorthand for Metrics().LineHeight().
func (f *Face) LineHeight() float64 { return f.metrics.LineHeight() }

// Advance returns the shaped advance width of s in pixels. Kerning and
// ligatures are applied, and right-to-left runs are shaped as such.
// Newlines are not interpreted; use Wrap first for multi-line text.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	return f.advances.getOrCompute(s, func() float64 {
		runes := []rune(s)
		var total float64
		for _, run := range runsOf(runes) {
			out := f.shape(runes, run)
			total += math.Abs(fixedToFloat(out.Advance))
		}
		return total
	})
}

// Measure returns the advance of s and the face's line height.
func (f *Face) Measure(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return f.Advance(s), f.LineHeight()
}

// MeasureLines returns the widest advance among lines and their total
// height at one line height per line.
func (f *Face) MeasureLines(lines []string) (width, height float64) {
	for _, l := range lines {
		width = math.Max(width, f.Advance(l))
	}
	return width, float64(len(lines)) * f.LineHeight()
}
