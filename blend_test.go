package bivariate

import (
	"errors"
	"math"
	"testing"
)

func TestBlendKindString(t *testing.T) {
	tests := []struct {
		kind BlendKind
		want string
	}{
		{KindCorners, "Corners"},
		{KindNamed, "Named"},
		{KindAccents, "Accents"},
		{KindColormapPair, "ColormapPair"},
		{BlendKind(42), "BlendKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCornersLaws(t *testing.T) {
	p := Palette{
		AccentA: RGB(0.9, 0.2, 0.1),
		AccentB: RGB(0.1, 0.3, 0.9),
		Low:     RGB(0.95, 0.95, 0.9),
		High:    RGB(0.1, 0.05, 0.2),
	}
	spec, err := Corners(p.AccentA, p.AccentB, p.Low, p.High)
	if err != nil {
		t.Fatalf("Corners() error = %v", err)
	}
	if spec.Kind() != KindCorners {
		t.Errorf("Kind() = %v", spec.Kind())
	}
	checkCorners(t, spec, p)

	got, ok := spec.Palette()
	if !ok || got != p {
		t.Errorf("Palette() = %+v, %v", got, ok)
	}
}

func TestCornersRejectsInvalidColor(t *testing.T) {
	_, err := Corners(RGB(1.2, 0, 0), RGB(0, 0, 1), RGB(1, 1, 1), RGB(0, 0, 0))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Corners() error = %v, want ErrInvalidParameter", err)
	}
}

func TestNamedUnknown(t *testing.T) {
	if _, err := Named("nope"); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("Named() error = %v, want ErrUnknownPalette", err)
	}
}

func TestAccents(t *testing.T) {
	a, b := RGB(0.94, 0.30, 0.34), RGB(0.12, 0.86, 0.78)

	tests := []struct {
		name      string
		opts      []AccentOption
		low, high Color
	}{
		{"light", nil, nearWhite, nearBlack},
		{"dark", []AccentOption{WithDarkMode(true)}, nearBlack, nearWhite},
		{"explicit low", []AccentOption{WithLow(RGB(1, 1, 0.8))}, RGB(1, 1, 0.8), nearBlack},
		{"dark with explicit high", []AccentOption{WithDarkMode(true), WithHigh(RGB(0.9, 0.9, 0.9))}, nearBlack, RGB(0.9, 0.9, 0.9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Accents(a, b, tt.opts...)
			if err != nil {
				t.Fatalf("Accents() error = %v", err)
			}
			if spec.Kind() != KindAccents {
				t.Errorf("Kind() = %v", spec.Kind())
			}
			checkCorners(t, spec, Palette{AccentA: a, AccentB: b, Low: tt.low, High: tt.high})
		})
	}
}

func TestBlendMatchesPackageFunction(t *testing.T) {
	spec := MustNamed("plum_mint")
	if spec.Blend(0.3, 0.7) != Blend(0.3, 0.7, spec) {
		t.Error("Blend() and spec.Blend() disagree")
	}
}

func TestBlendIsBilinear(t *testing.T) {
	spec := MustNamed("glacier_ember")
	// The centre equals the midpoint of the two edge midpoints.
	bottom := spec.BlendPerceptual(0.5, 0)
	top := spec.BlendPerceptual(0.5, 1)
	want := bottom.Lerp(top, 0.5)
	got := spec.BlendPerceptual(0.5, 0.5)
	if math.Abs(got.L-want.L) > 1e-12 || math.Abs(got.A-want.A) > 1e-12 || math.Abs(got.B-want.B) > 1e-12 {
		t.Errorf("BlendPerceptual(0.5, 0.5) = %+v, want %+v", got, want)
	}
}

func TestBlendOutOfRangeStaysInGamut(t *testing.T) {
	spec := MustNamed(DefaultPalette)
	for _, pos := range [][2]float64{{-1, 0}, {2, 2}, {0.5, -3}, {1.5, 0.5}} {
		c := spec.Blend(pos[0], pos[1])
		if err := c.Validate(); err != nil {
			t.Errorf("Blend(%v, %v) = %v: %v", pos[0], pos[1], c, err)
		}
	}
}

func TestColormapPair(t *testing.T) {
	spec, err := NamedColormapPair("Oranges", "Blues")
	if err != nil {
		t.Fatalf("NamedColormapPair() error = %v", err)
	}
	if spec.Kind() != KindColormapPair {
		t.Errorf("Kind() = %v", spec.Kind())
	}
	if _, ok := spec.Palette(); ok {
		t.Error("Palette() reported ok for a ramp pair")
	}

	oranges, _ := LookupRamp("Oranges")
	blues, _ := LookupRamp("Blues")

	t.Run("axis ends", func(t *testing.T) {
		if got, want := spec.Blend(1, 0), oranges.ColorAt(1); !colorsEqual(got, want, 1e-9) {
			t.Errorf("Blend(1, 0) = %v, want %v", got, want)
		}
		if got, want := spec.Blend(0, 1), blues.ColorAt(1); !colorsEqual(got, want, 1e-9) {
			t.Errorf("Blend(0, 1) = %v, want %v", got, want)
		}
	})

	t.Run("diagonal mixes evenly", func(t *testing.T) {
		for _, p := range []float64{0, 0.5, 1} {
			want := ToDevice(oranges.At(p).Lerp(blues.At(p), 0.5))
			if got := spec.Blend(p, p); !colorsEqual(got, want, 1e-9) {
				t.Errorf("Blend(%v, %v) = %v, want %v", p, p, got, want)
			}
		}
	})

	t.Run("clamps positions", func(t *testing.T) {
		if got, want := spec.Blend(1.5, -0.5), spec.Blend(1, 0); !colorsEqual(got, want, 1e-9) {
			t.Errorf("Blend(1.5, -0.5) = %v, want %v", got, want)
		}
		if got, want := spec.Blend(2, -1), spec.Blend(1, 0); !colorsEqual(got, want, 1e-9) {
			t.Errorf("Blend(2, -1) = %v, want %v", got, want)
		}
		if got, want := spec.Blend(-3, 4), spec.Blend(0, 1); !colorsEqual(got, want, 1e-9) {
			t.Errorf("Blend(-3, 4) = %v, want %v", got, want)
		}
	})
}

func TestColormapPairErrors(t *testing.T) {
	if _, err := ColormapPair(Ramp{}, Ramp{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ColormapPair(zero) error = %v", err)
	}
	_, err := NamedColormapPair("Oranges", "Teals")
	var upe *UnknownPaletteError
	if !errors.As(err, &upe) || upe.Kind != "ramp" {
		t.Errorf("NamedColormapPair() error = %v, want unknown ramp", err)
	}
}

// Two observations on the default palette land on distinct colours inside
// the perceptual hull of its corners.
func TestColorizeTwoObservations(t *testing.T) {
	spec := MustNamed("electric_neon")
	colors, err := Colorize([]float64{1, 2}, []float64{10, 100}, spec)
	if err != nil {
		t.Fatalf("Colorize() error = %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("len = %d, want 2", len(colors))
	}
	if colors[0].Hex() == colors[1].Hex() {
		t.Errorf("colours not distinct: %v", colors)
	}

	p := MustPalette("electric_neon")
	corners := []Lab{ToPerceptual(p.Low), ToPerceptual(p.AccentA), ToPerceptual(p.AccentB), ToPerceptual(p.High)}
	const eps = 1e-3
	for _, c := range colors {
		lab := ToPerceptual(c)
		for axis, get := range []func(Lab) float64{
			func(l Lab) float64 { return l.L },
			func(l Lab) float64 { return l.A },
			func(l Lab) float64 { return l.B },
		} {
			lo, hi := math.Inf(1), math.Inf(-1)
			for _, k := range corners {
				lo = math.Min(lo, get(k))
				hi = math.Max(hi, get(k))
			}
			if v := get(lab); v < lo-eps || v > hi+eps {
				t.Errorf("%v axis %d = %v outside [%v, %v]", c, axis, v, lo, hi)
			}
		}
	}
	// (0,0) and (1,1) are the exact corners.
	if !colorsEqual(colors[0], p.Low, colorTolerance) || !colorsEqual(colors[1], p.High, colorTolerance) {
		t.Errorf("colours = %v, want low and high corners", colors)
	}
}
