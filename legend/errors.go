// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"errors"
	"fmt"

	"github.com/gogpu/bivariate"
)

// ErrLayoutDidNotConverge is returned when the fit loop runs out of
// iterations before the content area reaches the target size.
var ErrLayoutDidNotConverge = errors.New("legend: layout did not converge")

// LayoutDidNotConvergeError carries the state of the canvas when the fit
// loop gave up. The canvas is left in that state.
type LayoutDidNotConvergeError struct {
	Target     float64
	Content    Rect
	Iterations int
	// WidthInches and HeightInches are the last physical canvas size.
	WidthInches  float64
	HeightInches float64
}

func (e *LayoutDidNotConvergeError) Error() string {
	return fmt.Sprintf("legend: layout did not converge after %d iterations: content %.2fx%.2f px, target %.2f px (canvas %.3fx%.3f in)",
		e.Iterations, e.Content.W, e.Content.H, e.Target, e.WidthInches, e.HeightInches)
}

func (e *LayoutDidNotConvergeError) Unwrap() error { return ErrLayoutDidNotConverge }

func invalidParam(param string, value any, reason string) error {
	return &bivariate.InvalidParameterError{Param: param, Value: value, Reason: reason}
}
