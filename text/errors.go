package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for a font size that is not a positive
	// finite number.
	ErrInvalidSize = errors.New("text: invalid font size")
)

// FontParseError is returned when one of the font backends rejects the
// font data.
type FontParseError struct {
	// Backend is "opentype" (rasterising) or "shaping".
	Backend string
	Err     error
}

func (e *FontParseError) Error() string {
	return "text: parse font (" + e.Backend + "): " + e.Err.Error()
}

func (e *FontParseError) Unwrap() error { return e.Err }
