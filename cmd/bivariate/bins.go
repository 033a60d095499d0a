package main

import (
	"fmt"
	"slices"

	"github.com/gogpu/bivariate"
	"github.com/gogpu/bivariate/legend"
)

// BinFlags turns continuous columns into equal-interval classes.
type BinFlags struct {
	BinsA int `name:"bins-a" help:"Classify axis a into N equal-interval classes (0 = continuous)."`
	BinsB int `name:"bins-b" help:"Classify axis b into N equal-interval classes (0 = continuous)."`
}

// equalInterval splits [min, max] of values into k classes of equal width.
// Class i holds values in (b(i-1), bi]; the first class is closed.
func equalInterval(values []float64, k int) (bivariate.Binned, error) {
	if k < 2 {
		return bivariate.Binned{}, fmt.Errorf("need at least 2 classes, got %d", k)
	}
	if len(values) == 0 {
		return bivariate.Binned{}, fmt.Errorf("no values to classify")
	}
	lo, hi := slices.Min(values), slices.Max(values)
	if lo == hi {
		return bivariate.Binned{}, &bivariate.DegenerateRangeError{Value: lo, Count: len(values)}
	}

	bounds := make([]float64, k)
	for i := range bounds {
		bounds[i] = lo + (hi-lo)*float64(i+1)/float64(k)
	}
	bounds[k-1] = hi

	classes := make([]int, len(values))
	for i, v := range values {
		c, _ := slices.BinarySearch(bounds, v)
		classes[i] = min(c, k-1)
	}
	return bivariate.Binned{K: k, Classes: classes, Labels: bivariate.IntervalLabels(lo, bounds)}, nil
}

// axisPositions returns the blend positions of one column: normalised
// values, or class positions when bins > 0.
func axisPositions(values []float64, bins int) ([]float64, error) {
	if bins == 0 {
		return bivariate.Normalize(values)
	}
	b, err := equalInterval(values, bins)
	if err != nil {
		return nil, err
	}
	return b.Positions()
}

// legendAxis builds the legend axis matching axisPositions.
func legendAxis(label string, values []float64, bins int) (legend.Axis, error) {
	if bins == 0 {
		return legend.ContinuousAxis(label, values), nil
	}
	b, err := equalInterval(values, bins)
	if err != nil {
		return legend.Axis{}, err
	}
	return legend.BinnedAxis(label, b), nil
}
