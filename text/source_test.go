package text

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultSource(t *testing.T) {
	a, err := DefaultSource()
	if err != nil {
		t.Fatalf("DefaultSource() error = %v", err)
	}
	b, _ := DefaultSource()
	if a != b {
		t.Error("DefaultSource() should be parsed once")
	}
	if a.Name() != "Go Regular" {
		t.Errorf("Name() = %q", a.Name())
	}
}

func TestNewFontSourceName(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	if src.Name() != "Go" {
		t.Errorf("Name() = %q, want family name %q", src.Name(), "Go")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v", err)
	}
	_, err := NewFontSource([]byte("definitely not a font"))
	var pe *FontParseError
	if !errors.As(err, &pe) {
		t.Fatalf("NewFontSource(garbage) error = %v, want *FontParseError", err)
	}
	if pe.Backend != "opentype" {
		t.Errorf("Backend = %q", pe.Backend)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := NewFontSourceFromFile(path, WithName("custom"))
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	if src.Name() != "custom" {
		t.Errorf("Name() = %q", src.Name())
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestFaceInvalidSize(t *testing.T) {
	src, err := DefaultSource()
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if _, err := src.Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}
