package bivariate

import (
	"fmt"
	"strings"
)

// Binned is the output of a binning collaborator for one axis: K classes,
// a class index per observation and human-readable interval labels.
type Binned struct {
	K       int
	Classes []int
	// Labels holds one label per class (K) or per class boundary (K+1).
	Labels []string
}

// Validate checks class indices and the label count.
func (b Binned) Validate() error {
	if b.K < 1 {
		return invalidParam("class count", b.K, "must be at least 1")
	}
	for i, c := range b.Classes {
		if c < 0 || c >= b.K {
			return invalidParam("class index", c, fmt.Sprintf("observation %d is outside [0, %d)", i, b.K))
		}
	}
	if b.Labels != nil && len(b.Labels) != b.K && len(b.Labels) != b.K+1 {
		return invalidParam("tick labels", len(b.Labels), fmt.Sprintf("want %d or %d labels for %d classes", b.K, b.K+1, b.K))
	}
	return nil
}

// Positions maps class indices to axis positions class / (K - 1).
// A single class has no range and fails with *DegenerateRangeError.
func (b Binned) Positions() ([]float64, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.K == 1 {
		return nil, &DegenerateRangeError{Value: 0, Count: len(b.Classes)}
	}
	out := make([]float64, len(b.Classes))
	for i, c := range b.Classes {
		out[i] = float64(c) / float64(b.K-1)
	}
	return out, nil
}

// ColorizePositions blends pre-normalised axis positions.
func ColorizePositions(posA, posB []float64, spec BlendSpec) ([]Color, error) {
	if len(posA) != len(posB) {
		return nil, invalidParam("positions", fmt.Sprintf("%d/%d", len(posA), len(posB)), "both axes must have the same length")
	}
	out := make([]Color, len(posA))
	for i := range posA {
		out[i] = spec.Blend(posA[i], posB[i])
	}
	return out, nil
}

// Colorize normalises both value sequences and blends them into one colour
// per observation.
func Colorize(valuesA, valuesB []float64, spec BlendSpec) ([]Color, error) {
	if len(valuesA) != len(valuesB) {
		return nil, invalidParam("values", fmt.Sprintf("%d/%d", len(valuesA), len(valuesB)), "both axes must have the same length")
	}
	posA, err := Normalize(valuesA)
	if err != nil {
		return nil, fmt.Errorf("axis a: %w", err)
	}
	posB, err := Normalize(valuesB)
	if err != nil {
		return nil, fmt.Errorf("axis b: %w", err)
	}
	Logger().Debug("colorize", "observations", len(valuesA), "kind", spec.Kind().String())
	return ColorizePositions(posA, posB, spec)
}

// ColorizeBinned blends class indices from two binned axes.
func ColorizeBinned(a, b Binned, spec BlendSpec) ([]Color, error) {
	posA, err := a.Positions()
	if err != nil {
		return nil, fmt.Errorf("axis a: %w", err)
	}
	posB, err := b.Positions()
	if err != nil {
		return nil, fmt.Errorf("axis b: %w", err)
	}
	return ColorizePositions(posA, posB, spec)
}

// DarkTiles reports whether a basemap tile-set name suggests a dark
// theme, e.g. "CartoDB DarkMatter".
func DarkTiles(name string) bool {
	return strings.Contains(strings.ToLower(name), "dark")
}
