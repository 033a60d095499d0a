// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"
)

func TestPixmapSetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d", pm.Width(), pm.Height())
	}
	red := color.RGBA{R: 255, A: 255}
	pm.SetPixel(1, 2, red)
	if got := pm.Image().RGBAAt(1, 2); got != red {
		t.Errorf("pixel = %v, want %v", got, red)
	}
	// Out-of-bounds writes are ignored.
	pm.SetPixel(-1, 0, red)
	pm.SetPixel(4, 0, red)
}

func TestPixmapClearAndFill(t *testing.T) {
	pm := NewPixmap(10, 10)
	white := color.RGBA{255, 255, 255, 255}
	pm.Clear(white)
	if got := pm.Image().RGBAAt(9, 9); got != white {
		t.Errorf("Clear() pixel = %v", got)
	}
	black := color.RGBA{A: 255}
	pm.FillRect(image.Rect(2, 2, 4, 4), black)
	pm.FillRect(image.Rect(8, 8, 20, 20), black) // clipped
	if got := pm.Image().RGBAAt(3, 3); got != black {
		t.Errorf("FillRect() pixel = %v", got)
	}
	if got := pm.Image().RGBAAt(4, 4); got != white {
		t.Errorf("pixel outside rect = %v", got)
	}
}

func TestPixmapScaleIsNearest(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	a, b := color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255}
	src.SetRGBA(0, 0, a)
	src.SetRGBA(1, 0, b)

	pm := NewPixmap(20, 10)
	pm.Scale(src, image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		want := a
		if x >= 10 {
			want = b
		}
		if got := pm.Image().RGBAAt(x, 5); got != want {
			t.Fatalf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestPixmapRotateQuarterTurn(t *testing.T) {
	// A 4x2 bar becomes a 2x4 bar reading upwards.
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			src.SetRGBA(x, y, color.RGBA{uint8(60 * x), 0, 0, 255})
		}
	}
	pm := NewPixmap(10, 10)
	pm.Rotate(src, math.Pi/2, 5, 2)

	img := pm.Image()
	for y := 2; y < 6; y++ {
		for x := 3; x < 5; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("pixel (%d, %d) not covered", x, y)
			}
		}
	}
	// The right end of the source ends up on top.
	if top, bottom := img.RGBAAt(3, 2).R, img.RGBAAt(3, 5).R; top <= bottom {
		t.Errorf("top red %d <= bottom red %d", top, bottom)
	}
	if img.RGBAAt(5, 2).A != 0 || img.RGBAAt(3, 6).A != 0 {
		t.Error("rotation drew outside its bounding box")
	}
}

func TestPixmapRotateZeroCopies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{R: 255, A: 255}
	src.SetRGBA(2, 0, red)

	pm := NewPixmap(10, 10)
	pm.Rotate(src, 0, 7, 4)
	// The top-right source pixel lands just left of (right, top).
	if got := pm.Image().RGBAAt(6, 4); got != red {
		t.Errorf("pixel (6, 4) = %v, want %v", got, red)
	}
	if got := pm.Image().RGBAAt(7, 4); got.A != 0 {
		t.Errorf("pixel (7, 4) = %v, want transparent", got)
	}
}

func TestPixmapDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	blue := color.RGBA{B: 255, A: 255}
	src.SetRGBA(5, 5, blue)

	pm := NewPixmap(4, 4)
	pm.DrawImage(src, image.Pt(1, 2))
	if got := pm.Image().RGBAAt(1, 2); got != blue {
		t.Errorf("pixel (1, 2) = %v, want %v", got, blue)
	}
}

func TestPixmapPNG(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Clear(color.RGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	if err := pm.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
