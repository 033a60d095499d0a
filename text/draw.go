package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders s to dst. Position (x, y) is the baseline origin.
// Right-to-left runs are laid out in visual order.
func (f *Face) Draw(dst draw.Image, s string, x, y float64, col color.Color) error {
	if s == "" {
		return nil
	}
	face, err := f.source.rasterFace(f.size)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(Visual(s))
	return nil
}

// DrawLines renders lines top to bottom, one line height apart. The top of
// the first line is at y. Each line is centred on cx when centred is true,
// otherwise it starts at cx.
func (f *Face) DrawLines(dst draw.Image, lines []string, cx, y float64, centred bool, col color.Color) error {
	lh := f.LineHeight()
	for i, line := range lines {
		x := cx
		if centred {
			x -= f.Advance(line) / 2
		}
		if err := f.Draw(dst, line, x, y+float64(i)*lh+f.metrics.Ascent, col); err != nil {
			return err
		}
	}
	return nil
}

// Rasterize renders lines onto a transparent image just large enough to
// hold them, each line centred horizontally.
func (f *Face) Rasterize(lines []string, col color.Color) (*image.RGBA, error) {
	w, h := f.MeasureLines(lines)
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
	if err := f.DrawLines(img, lines, w/2, 0, true, col); err != nil {
		return nil, err
	}
	return img, nil
}
