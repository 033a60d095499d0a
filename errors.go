package bivariate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bivariate package.
// Every typed error below unwraps to one of these, so callers may use
// errors.Is without caring about the concrete type.
var (
	// ErrDegenerateRange is returned when an axis has zero value range.
	ErrDegenerateRange = errors.New("bivariate: degenerate value range")

	// ErrUnknownPalette is returned when a palette or ramp name is not registered.
	ErrUnknownPalette = errors.New("bivariate: unknown palette")

	// ErrInvalidParameter is returned for malformed colours, out-of-range
	// quantiles, mismatched lengths and similar caller errors.
	ErrInvalidParameter = errors.New("bivariate: invalid parameter")
)

// DegenerateRangeError is returned by Normalize when all values are equal.
// Single-valued axes have to be special-cased by the caller.
type DegenerateRangeError struct {
	Value float64
	Count int
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("bivariate: cannot normalize %d values: range is zero (all equal to %g)", e.Count, e.Value)
}

func (e *DegenerateRangeError) Unwrap() error { return ErrDegenerateRange }

// UnknownPaletteError is returned when a name is missing from a registry.
type UnknownPaletteError struct {
	Name string
	// Kind is "palette" or "ramp".
	Kind string
}

func (e *UnknownPaletteError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "palette"
	}
	return fmt.Sprintf("bivariate: unknown %s %q", kind, e.Name)
}

func (e *UnknownPaletteError) Unwrap() error { return ErrUnknownPalette }

// InvalidParameterError describes a rejected argument.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("bivariate: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

func invalidParam(param string, value any, reason string) error {
	return &InvalidParameterError{Param: param, Value: value, Reason: reason}
}
