// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/bivariate"
	"github.com/gogpu/bivariate/text"
)

// tickAngle is the rotation applied to overlapping x tick labels.
const tickAngle = math.Pi / 4

// frame lays out the axes around the legend swatch: axis a runs along the
// bottom edge and axis b up the left edge. It implements Layouter.
//
// Once the x tick labels overlap they are rotated and stay rotated for the
// rest of the fit, so a shrinking canvas cannot flip the layout back and
// forth.
type frame struct {
	face           *text.Face
	labelX, labelY string
	ticksX, ticksY []tick
	pad            float64
	// wrapWidth is the extent axis labels are wrapped to: the target data
	// size, so that wrapping never changes while the canvas is resized.
	wrapWidth float64

	rotated bool
	last    frameLayout
}

// frameLayout is the result of one Layout call; drawing reuses it so the
// image matches what was measured.
type frameLayout struct {
	content        Rect
	xLines, yLines []string
	xTickBlock     float64
	rotated        bool
}

func newFrame(face *text.Face, labelX, labelY string, ticksX, ticksY []tick, wrapWidth float64) *frame {
	return &frame{
		face:      face,
		labelX:    labelX,
		labelY:    labelY,
		ticksX:    ticksX,
		ticksY:    ticksY,
		pad:       math.Max(2, math.Round(face.Size()*0.4)),
		wrapWidth: wrapWidth,
	}
}

// Layout implements Layouter. Margins depend only on the font, the
// labels and the sticky rotation state, never on the canvas size, so a
// fit over repeated Layout calls cannot oscillate.
func (f *frame) Layout(widthPx, heightPx float64) Rect {
	l := f.compute(widthPx, heightPx)
	if !f.rotated && f.xTicksOverlap(l.content) {
		f.rotated = true
		bivariate.Logger().Debug("legend x tick labels rotated", "degrees", 45, "ticks", len(f.ticksX))
		l = f.compute(widthPx, heightPx)
	}
	f.last = l
	return l.content
}

func (f *frame) compute(widthPx, heightPx float64) frameLayout {
	lh := f.face.LineHeight()
	l := frameLayout{
		xLines:  f.face.Wrap(f.labelX, f.wrapWidth, text.WrapWordChar),
		yLines:  f.face.Wrap(f.labelY, f.wrapWidth, text.WrapWordChar),
		rotated: f.rotated,
	}

	yTickW := 0.0
	for _, t := range f.ticksY {
		yTickW = math.Max(yTickW, f.face.Advance(t.label))
	}
	left := f.pad + float64(len(l.yLines))*lh + f.pad + yTickW + f.pad
	right := f.pad
	top := f.pad + lh/2

	if len(f.ticksX) > 0 {
		first := f.face.Advance(f.ticksX[0].label)
		last := f.face.Advance(f.ticksX[len(f.ticksX)-1].label)
		if l.rotated {
			for _, t := range f.ticksX {
				l.xTickBlock = math.Max(l.xTickBlock, rotatedExtent(f.face.Advance(t.label), lh))
			}
			left = math.Max(left, f.pad+rotatedExtent(first, lh))
		} else {
			l.xTickBlock = lh
			left = math.Max(left, f.pad+first/2)
			right = math.Max(right, f.pad+last/2)
		}
	}
	bottom := f.pad + l.xTickBlock + f.pad + float64(len(l.xLines))*lh + f.pad

	l.content = Rect{
		X: left,
		Y: top,
		W: widthPx - left - right,
		H: heightPx - top - bottom,
	}
	return l
}

// rotatedExtent is the width (and height) of the bounding box of a w x h
// label rotated by tickAngle.
func rotatedExtent(w, h float64) float64 {
	return (w + h) * math.Sin(tickAngle)
}

// xTicksOverlap reports whether horizontal x tick labels would touch.
func (f *frame) xTicksOverlap(content Rect) bool {
	prevEnd := math.Inf(-1)
	for _, t := range f.ticksX {
		w := f.face.Advance(t.label)
		cx := content.X + t.pos*content.W
		if cx-w/2 <= prevEnd {
			return true
		}
		prevEnd = cx + w/2
	}
	return false
}

// draw renders the frame of the last layout around data.
func (f *frame) draw(pm *Pixmap, data image.Rectangle, col color.Color) error {
	l := f.last
	drawArrows(pm, data, f.arrowSize(), col)

	m := f.face.Metrics()
	lh := f.face.LineHeight()
	x0, y0 := float64(data.Min.X), float64(data.Min.Y)
	dw, dh := float64(data.Dx()), float64(data.Dy())
	bottom := float64(data.Max.Y)

	// Axis b ticks, right-aligned left of the swatch.
	for _, t := range f.ticksY {
		y := bottom - t.pos*dh
		x := x0 - f.pad - f.face.Advance(t.label)
		if err := f.face.Draw(pm.Image(), t.label, x, y+(m.Ascent-m.Descent)/2, col); err != nil {
			return err
		}
	}

	// Axis a ticks below the swatch.
	tickTop := bottom + f.pad
	for _, t := range f.ticksX {
		cx := x0 + t.pos*dw
		if !l.rotated {
			if err := f.face.Draw(pm.Image(), t.label, cx-f.face.Advance(t.label)/2, tickTop+m.Ascent, col); err != nil {
				return err
			}
			continue
		}
		img, err := f.face.Rasterize([]string{t.label}, col)
		if err != nil {
			return err
		}
		pm.Rotate(img, tickAngle, cx, tickTop)
	}

	// Axis a label, centred under the ticks.
	labelTop := tickTop + l.xTickBlock + f.pad
	if err := f.face.DrawLines(pm.Image(), l.xLines, x0+dw/2, labelTop, true, col); err != nil {
		return err
	}

	// Axis b label, reading upwards along the left edge.
	if len(l.yLines) > 0 {
		img, err := f.face.Rasterize(l.yLines, col)
		if err != nil {
			return err
		}
		right := f.pad + float64(len(l.yLines))*lh
		top := y0 + dh/2 - float64(img.Bounds().Dx())/2
		pm.Rotate(img, math.Pi/2, right, top)
	}
	return nil
}

func (f *frame) arrowSize() int {
	return int(math.Max(3, math.Round(f.face.Size()*0.4)))
}

// drawArrows draws the two axis arrows from the origin corner of data:
// one up the left edge and one along the bottom edge.
func drawArrows(pm *Pixmap, data image.Rectangle, head int, col color.Color) {
	x := data.Min.X
	y := data.Max.Y - 1

	pm.FillRect(image.Rect(x, data.Min.Y, x+1, data.Max.Y), col)
	pm.FillRect(image.Rect(data.Min.X, y, data.Max.X, y+1), col)

	for i := 0; i < head; i++ {
		// Up arrow at the top of the b axis.
		pm.FillRect(image.Rect(x-i, data.Min.Y+i, x+i+1, data.Min.Y+i+1), col)
		// Right arrow at the end of the a axis.
		pm.FillRect(image.Rect(data.Max.X-1-i, y-i, data.Max.X-i, y+i+1), col)
	}
}
