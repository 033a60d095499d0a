// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import "image/color"

// Render defaults.
const (
	// DefaultSize is the side of the data area in pixels.
	DefaultSize = 200
	// DefaultDPI converts the physical canvas size to pixels.
	DefaultDPI = 100
	// DefaultTickFontSize is the tick and axis label size in pixels.
	DefaultTickFontSize = 10
	// DefaultMaxGridSize caps the automatic grid resolution of a
	// continuous axis.
	DefaultMaxGridSize = 256
)

// Option configures Render.
type Option func(*options)

type options struct {
	size          int
	gridA, gridB  int
	maxGridSize   int
	dpi           float64
	tickFontSize  float64
	fontColor     color.Color
	dark          bool
	fontData      []byte
	width, height float64 // initial canvas size, inches
	fit           []FitOption
}

func defaultOptions() options {
	return options{
		size:         DefaultSize,
		maxGridSize:  DefaultMaxGridSize,
		dpi:          DefaultDPI,
		tickFontSize: DefaultTickFontSize,
		width:        6.4,
		height:       4.8,
	}
}

// WithSize sets the side of the square data area in pixels.
func WithSize(px int) Option {
	return func(o *options) {
		o.size = px
	}
}

// WithTolerance sets the fit tolerance in pixels.
func WithTolerance(px float64) Option {
	return func(o *options) {
		o.fit = append(o.fit, FitTolerance(px))
	}
}

// WithMaxIterations bounds the number of fit iterations.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.fit = append(o.fit, FitMaxIterations(n))
	}
}

// WithFitOptions passes options straight to Fit.
func WithFitOptions(opts ...FitOption) Option {
	return func(o *options) {
		o.fit = append(o.fit, opts...)
	}
}

// WithDPI sets the canvas resolution.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.dpi = dpi
	}
}

// WithGridResolution sets the number of swatch cells on both axes.
// Binned axes always use their class count.
func WithGridResolution(n int) Option {
	return WithGridResolutions(n, n)
}

// WithGridResolutions sets the number of swatch cells per axis.
func WithGridResolutions(a, b int) Option {
	return func(o *options) {
		o.gridA = a
		o.gridB = b
	}
}

// WithMaxGridSize caps the automatic resolution of continuous axes, which
// otherwise matches the data area size.
func WithMaxGridSize(n int) Option {
	return func(o *options) {
		o.maxGridSize = n
	}
}

// WithTickFontSize sets the label font size in pixels.
func WithTickFontSize(px float64) Option {
	return func(o *options) {
		o.tickFontSize = px
	}
}

// WithFontColor sets the colour of labels, ticks and arrows.
func WithFontColor(c color.Color) Option {
	return func(o *options) {
		o.fontColor = c
	}
}

// WithDarkMode draws labels in white unless WithFontColor is given.
// Build the BlendSpec with bivariate.WithDarkMode to match.
func WithDarkMode(dark bool) Option {
	return func(o *options) {
		o.dark = dark
	}
}

// WithFontData uses a TTF/OTF font instead of the embedded Go Regular.
func WithFontData(data []byte) Option {
	return func(o *options) {
		o.fontData = data
	}
}

// WithInitialSize sets the canvas size in inches the fit starts from.
func WithInitialSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

func (o *options) textColor() color.Color {
	switch {
	case o.fontColor != nil:
		return o.fontColor
	case o.dark:
		return color.White
	default:
		return color.Black
	}
}
