// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/bivariate"
	"github.com/gogpu/bivariate/text"
)

// Axis describes one side of the legend: its label and where its ticks
// come from.
type Axis struct {
	// Label is the axis title. Empty labels default to "Value A" and
	// "Value B".
	Label string

	// TickLabels, when set, are spread evenly along the axis instead of
	// numeric ticks.
	TickLabels []string

	values []float64
	binned *bivariate.Binned
}

// ContinuousAxis is an axis with numeric ticks over the range of values.
func ContinuousAxis(label string, values []float64) Axis {
	return Axis{Label: label, values: values}
}

// BinnedAxis is an axis with one swatch cell per class. The binning's
// labels become the tick labels; without labels classes are numbered.
func BinnedAxis(label string, b bivariate.Binned) Axis {
	return Axis{Label: label, TickLabels: b.Labels, binned: &b}
}

func (a Axis) ticks() ([]tick, error) {
	switch {
	case a.binned != nil:
		if err := a.binned.Validate(); err != nil {
			return nil, err
		}
		if len(a.TickLabels) == 0 {
			return labelTicks(classLabels(a.binned.K)), nil
		}
		if len(a.TickLabels) != a.binned.K && len(a.TickLabels) != a.binned.K+1 {
			return nil, invalidParam("tick labels", len(a.TickLabels),
				fmt.Sprintf("want %d or %d labels for %d classes", a.binned.K, a.binned.K+1, a.binned.K))
		}
		return labelTicks(a.TickLabels), nil
	case len(a.TickLabels) > 0:
		return labelTicks(a.TickLabels), nil
	default:
		return numericTicks(a.values)
	}
}

func (a Axis) resolution(auto int) int {
	if a.binned != nil {
		return a.binned.K
	}
	return auto
}

// Legend is a rendered legend image whose data area is exactly the
// requested size.
type Legend struct {
	Image *image.RGBA
	// Width and Height are the image size in pixels.
	Width, Height int
	// DataArea is where the colour swatch was drawn.
	DataArea image.Rectangle
	// Canvas is the fitted geometry. It must not be resized further.
	Canvas *Canvas
}

// WritePNG encodes the legend as PNG.
func (l *Legend) WritePNG(w io.Writer) error {
	return (&Pixmap{img: l.Image}).WritePNG(w)
}

// Render draws the legend for spec with axis a along the bottom and axis b
// up the left side, then fits the canvas so that the data area is exactly
// WithSize pixels square.
func Render(spec bivariate.BlendSpec, a, b Axis, opts ...Option) (*Legend, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	ticksA, err := a.ticks()
	if err != nil {
		return nil, fmt.Errorf("legend: axis a: %w", err)
	}
	ticksB, err := b.ticks()
	if err != nil {
		return nil, fmt.Errorf("legend: axis b: %w", err)
	}

	resA, resB := o.gridA, o.gridB
	auto := min(o.size, o.maxGridSize)
	if resA == 0 {
		resA = auto
	}
	if resB == 0 {
		resB = auto
	}
	grid, err := bivariate.BuildGrid(a.resolution(resA), b.resolution(resB), spec)
	if err != nil {
		return nil, fmt.Errorf("legend: %w", err)
	}

	face, err := o.face()
	if err != nil {
		return nil, fmt.Errorf("legend: %w", err)
	}

	labelA, labelB := a.Label, b.Label
	if labelA == "" {
		labelA = "Value A"
	}
	if labelB == "" {
		labelB = "Value B"
	}
	fr := newFrame(face, labelA, labelB, ticksA, ticksB, float64(o.size))

	canvas, err := NewCanvas(o.width, o.height, o.dpi, fr)
	if err != nil {
		return nil, fmt.Errorf("legend: %w", err)
	}
	if _, err := Fit(canvas, float64(o.size), o.fit...); err != nil {
		return nil, fmt.Errorf("legend: fit %dpx data area: %w", o.size, err)
	}

	bounds := canvas.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	data := canvas.Content().Image()
	pm.Scale(grid.Image(), data)
	if err := fr.draw(pm, data, o.textColor()); err != nil {
		return nil, fmt.Errorf("legend: draw labels: %w", err)
	}

	bivariate.Logger().Debug("legend rendered",
		"width", bounds.Dx(), "height", bounds.Dy(),
		"data", data.String(), "iterations", canvas.Iterations())

	return &Legend{
		Image:    pm.Image(),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		DataArea: data,
		Canvas:   canvas,
	}, nil
}

func (o *options) validate() error {
	switch {
	case o.size < 1:
		return invalidParam("legend size", o.size, "must be at least 1 pixel")
	case o.gridA < 0 || o.gridB < 0:
		return invalidParam("grid resolution", fmt.Sprintf("%dx%d", o.gridA, o.gridB), "must not be negative")
	case o.maxGridSize < 1:
		return invalidParam("max grid size", o.maxGridSize, "must be at least 1")
	case !(o.dpi > 0) || math.IsInf(o.dpi, 1):
		return invalidParam("dpi", o.dpi, "must be a positive finite number")
	case !(o.tickFontSize > 0):
		return invalidParam("tick font size", o.tickFontSize, "must be positive")
	}
	return nil
}

func (o *options) face() (*text.Face, error) {
	if o.fontData == nil {
		return text.DefaultFace(o.tickFontSize)
	}
	src, err := text.NewFontSource(o.fontData)
	if err != nil {
		return nil, err
	}
	return src.Face(o.tickFontSize)
}
