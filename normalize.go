package bivariate

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// DefaultOpacityQuantile is the quantile used to normalise opacity.
// Values at or above it are fully opaque; staying below 1 keeps outliers
// from washing out the rest of the map.
const DefaultOpacityQuantile = 0.9

// Normalize rescales values to [0, 1] with (v - min) / (max - min).
// It fails with *DegenerateRangeError when every value is equal.
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, invalidParam("values", "[]", "cannot normalize an empty sequence")
	}
	lo, hi := stats.Bounds(values)
	if lo == hi {
		return nil, &DegenerateRangeError{Value: lo, Count: len(values)}
	}

	s := scale.Linear{Min: lo, Max: hi}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.Map(v)
	}
	return out, nil
}

// QuantileClip maps values to opacities with sqrt(min(1, v / quantile(values, q))).
// q must be within [0, 1]. The quantile interpolates linearly between
// order statistics (Hyndman-Fan R7, the numpy default). A value equal to
// the quantile maps to exactly 1.
//
// A non-positive quantile (for example q = 0 over data whose minimum is 0)
// has no meaningful ratio and fails with *InvalidParameterError. Negative
// ratios clamp to 0.
func QuantileClip(values []float64, q float64) ([]float64, error) {
	ref, err := quantileRef(values, q)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = opacity(v / ref)
	}
	return out, nil
}

// Opacity combines both axes the way map layers expect:
// sqrt(min(1, max(a / qa, b / qb))) where qa and qb are the q-quantiles of
// each axis. Higher values on either axis are more opaque.
func Opacity(valuesA, valuesB []float64, q float64) ([]float64, error) {
	if len(valuesA) != len(valuesB) {
		return nil, invalidParam("values", len(valuesB), "both axes must have the same length")
	}
	refA, err := quantileRef(valuesA, q)
	if err != nil {
		return nil, err
	}
	refB, err := quantileRef(valuesB, q)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(valuesA))
	for i := range valuesA {
		out[i] = opacity(math.Max(valuesA[i]/refA, valuesB[i]/refB))
	}
	return out, nil
}

func quantileRef(values []float64, q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, invalidParam("quantile", q, "must be between 0 and 1 (inclusive)")
	}
	if len(values) == 0 {
		return 0, invalidParam("values", "[]", "cannot take a quantile of an empty sequence")
	}
	ref := quantileR7(values, q)
	if !(ref > 0) {
		return 0, invalidParam("quantile", q, "reference value must be positive, got "+formatFloat(ref))
	}
	return ref, nil
}

// quantileR7 interpolates between the order statistics around
// h = (n-1)q.
func quantileR7(values []float64, q float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

func opacity(ratio float64) float64 {
	return math.Sqrt(clamp01(ratio))
}
