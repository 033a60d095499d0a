// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"

	"github.com/gogpu/bivariate"
)

// maxNumericTicks bounds the number of ticks on a continuous axis.
const maxNumericTicks = 5

// tick is one labelled mark along an axis. pos is in [0, 1] from the
// origin corner.
type tick struct {
	pos   float64
	label string
}

// numericTicks picks round tick values within the range of values.
func numericTicks(values []float64) ([]tick, error) {
	if len(values) == 0 {
		return nil, invalidParam("axis values", "[]", "a continuous axis needs at least one value")
	}
	lo, hi := stats.Bounds(values)
	if lo == hi {
		return nil, &bivariate.DegenerateRangeError{Value: lo, Count: len(values)}
	}

	s := scale.Linear{Min: lo, Max: hi, Base: 10}
	major, _ := s.Ticks(scale.TickOptions{Max: maxNumericTicks})
	if len(major) == 0 {
		major = []float64{lo, hi}
	}

	decimals := 0
	if len(major) > 1 {
		if d := -int(math.Floor(math.Log10(major[1] - major[0]))); d > 0 {
			decimals = d
		}
	}

	ticks := make([]tick, 0, len(major))
	for _, v := range major {
		if v < lo || v > hi {
			continue
		}
		ticks = append(ticks, tick{pos: s.Map(v), label: bivariate.FormatNumber(v, decimals)})
	}
	return ticks, nil
}

// labelTicks spreads labels evenly from one end of the axis to the other.
func labelTicks(labels []string) []tick {
	pos := bivariate.Linspace(len(labels))
	ticks := make([]tick, len(labels))
	for i, l := range labels {
		ticks[i] = tick{pos: pos[i], label: l}
	}
	return ticks
}

// classLabels numbers k classes from 1.
func classLabels(k int) []string {
	labels := make([]string, k)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}
