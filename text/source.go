package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	gotext "github.com/go-text/typesetting/font"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// The font is parsed twice: once by golang.org/x/image for rasterising and
// once by go-text/typesetting for shaping. Both parsed forms are read-only,
// so FontSource is safe for concurrent use.
type FontSource struct {
	name   string
	raster *opentype.Font
	shape  *gotext.Font
}

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	name string
}

// WithName sets the display name of the source. When unset the family
// name from the font's name table is used.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is not retained after parsing.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}

	raster, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontParseError{Backend: "opentype", Err: err}
	}
	shape, err := parseShapingFont(data)
	if err != nil {
		return nil, &FontParseError{Backend: "shaping", Err: err}
	}

	name := config.name
	if name == "" {
		name, _ = raster.Name(nil, sfnt.NameIDFamily)
	}
	return &FontSource{name: name, raster: raster, shape: shape}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

var defaultSource = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(goregular.TTF, WithName("Go Regular"))
})

// DefaultSource returns the embedded Go Regular font, parsed once.
func DefaultSource() (*FontSource, error) {
	return defaultSource()
}

// Name returns the font name.
func (s *FontSource) Name() string {
	return s.name
}

// Face creates a Face at the given size in pixels.
func (s *FontSource) Face(size float64) (*Face, error) {
	if !(size > 0) || size > maxFaceSize {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	m, err := s.metrics(size)
	if err != nil {
		return nil, err
	}
	return &Face{source: s, size: size, metrics: m, advances: newLRU[string, float64](advanceCacheSize)}, nil
}

// maxFaceSize bounds sizes to what fixed.Int26_6 can represent comfortably.
const maxFaceSize = 1 << 16
