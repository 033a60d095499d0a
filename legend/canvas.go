// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"fmt"
	"image"
	"math"
)

// Rect is an area of the canvas in pixels. The origin is the top-left
// corner of the canvas.
type Rect struct {
	X, Y, W, H float64
}

// Image rounds r to whole pixels. Width and height are rounded on their
// own so that a content area within half a pixel of the target keeps the
// exact target size.
func (r Rect) Image() image.Rectangle {
	x, y := int(math.Round(r.X)), int(math.Round(r.Y))
	return image.Rect(x, y, x+int(math.Round(r.W)), y+int(math.Round(r.H)))
}

// Layouter places everything around the data area of a canvas and
// reports where the data area ends up. It is called again after every
// resize and may keep state between calls, such as whether tick labels
// have been rotated.
type Layouter interface {
	Layout(widthPx, heightPx float64) Rect
}

// Canvas is the physical geometry of a legend: its size in inches, the
// resolution and the content (data) area measured by its Layouter.
// A Canvas is owned by one render and is not safe for concurrent use.
type Canvas struct {
	width, height float64 // inches
	dpi           float64
	iterations    int
	content       Rect
	layouter      Layouter
}

// NewCanvas creates a canvas and measures its initial content area.
func NewCanvas(width, height, dpi float64, l Layouter) (*Canvas, error) {
	if !(dpi > 0) || math.IsInf(dpi, 1) {
		return nil, invalidParam("dpi", dpi, "must be a positive finite number")
	}
	if l == nil {
		return nil, invalidParam("layouter", nil, "must not be nil")
	}
	c := &Canvas{dpi: dpi, layouter: l}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize sets the physical size in inches and re-measures the content area.
func (c *Canvas) Resize(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 1) || math.IsInf(height, 1) {
		return invalidParam("dimensions", fmt.Sprintf("width=%g, height=%g", width, height), "both must be finite and > 0")
	}
	c.width = width
	c.height = height
	c.content = c.layouter.Layout(c.PixelSize())
	return nil
}

// Size returns the physical size in inches.
func (c *Canvas) Size() (width, height float64) {
	return c.width, c.height
}

// DPI returns the canvas resolution in pixels per inch.
func (c *Canvas) DPI() float64 {
	return c.dpi
}

// PixelSize returns the canvas size in (fractional) pixels.
func (c *Canvas) PixelSize() (width, height float64) {
	return c.width * c.dpi, c.height * c.dpi
}

// Bounds returns the pixel rectangle an image of this canvas needs.
func (c *Canvas) Bounds() image.Rectangle {
	w, h := c.PixelSize()
	return image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h)))
}

// Content returns the last measured content area.
func (c *Canvas) Content() Rect {
	return c.content
}

// Iterations returns the number of resize steps taken by the last Fit.
func (c *Canvas) Iterations() int {
	return c.iterations
}
