// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package legend renders the two-dimensional legend of a bivariate colour
// scheme and fits its data area to an exact pixel size.
//
// Labels and ticks take room that does not scale with the canvas, so the
// size of the data area cannot be computed up front. Fit resizes a Canvas
// until its Layouter reports a content area of the requested size, and
// Render wires that loop to the real legend frame:
//
//	spec := bivariate.MustNamed("electric_neon")
//	l, err := legend.Render(spec,
//	    legend.ContinuousAxis("Income", incomes),
//	    legend.ContinuousAxis("Population", population),
//	    legend.WithSize(200))
//	if err != nil {
//	    return err
//	}
//	err = l.WritePNG(w) // l.DataArea is exactly 200x200
package legend
