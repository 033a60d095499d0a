// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Pixmap represents a rectangular pixel buffer. The zero-alpha background
// lets the legend sit on any map.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return
	}
	p.img.Set(x, y, c)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites c over r.
func (p *Pixmap) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(p.img, r.Intersect(p.img.Rect), image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage composites src with its top-left corner at pt.
func (p *Pixmap) DrawImage(src image.Image, pt image.Point) {
	b := src.Bounds()
	draw.Draw(p.img, image.Rectangle{Min: pt, Max: pt.Add(b.Size())}, src, b.Min, draw.Over)
}

// Scale stretches src over r without smoothing, so every grid cell of a
// legend swatch stays a crisp block.
func (p *Pixmap) Scale(src image.Image, r image.Rectangle) {
	xdraw.NearestNeighbor.Scale(p.img, r, src, src.Bounds(), draw.Over, nil)
}

// Rotate composites src rotated counter-clockwise by angle radians.
// The rotated bounding box is placed with its top-right corner at
// (right, top). Quarter turns are sampled without smoothing.
func (p *Pixmap) Rotate(src image.Image, angle, right, top float64) {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if math.Mod(angle, 2*math.Pi) == 0 {
		p.DrawImage(src, image.Pt(int(math.Round(right-w)), int(math.Round(top))))
		return
	}
	sin, cos := math.Sincos(angle)

	// Rotated corners relative to the source origin, y pointing down.
	xs := [...]float64{0, cos * w, sin * h, cos*w + sin*h}
	ys := [...]float64{0, -sin * w, cos * h, -sin*w + cos*h}
	maxX, minY := math.Inf(-1), math.Inf(1)
	for i := range xs {
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
	}

	s2d := f64.Aff3{
		cos, sin, right - maxX - cos*float64(b.Min.X) - sin*float64(b.Min.Y),
		-sin, cos, top - minY + sin*float64(b.Min.X) - cos*float64(b.Min.Y),
	}
	var interp xdraw.Transformer = xdraw.BiLinear
	if math.Mod(angle, math.Pi/2) == 0 {
		interp = xdraw.NearestNeighbor
	}
	interp.Transform(p.img, s2d, src, b, draw.Over, nil)
}

// Image returns the underlying image. It is not copied.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// WritePNG encodes the pixmap as PNG.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
