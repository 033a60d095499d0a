package bivariate

import (
	"errors"
	"testing"
)

func TestBinnedPositions(t *testing.T) {
	b := Binned{K: 3, Classes: []int{0, 1, 2, 2}, Labels: []string{"low", "mid", "high"}}
	got, err := b.Positions()
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	want := []float64{0, 0.5, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBinnedValidate(t *testing.T) {
	tests := []struct {
		name    string
		b       Binned
		wantErr error
	}{
		{"ok without labels", Binned{K: 2, Classes: []int{0, 1}}, nil},
		{"ok with boundary labels", Binned{K: 2, Classes: []int{1}, Labels: []string{"0", "5", "10"}}, nil},
		{"no classes", Binned{K: 0}, ErrInvalidParameter},
		{"index too large", Binned{K: 2, Classes: []int{0, 2}}, ErrInvalidParameter},
		{"negative index", Binned{K: 2, Classes: []int{-1}}, ErrInvalidParameter},
		{"label count", Binned{K: 3, Classes: []int{0}, Labels: []string{"a"}}, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBinnedSingleClass(t *testing.T) {
	_, err := Binned{K: 1, Classes: []int{0, 0}}.Positions()
	if !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("Positions() error = %v, want ErrDegenerateRange", err)
	}
}

func TestColorizeBinned(t *testing.T) {
	spec := MustNamed("plum_mint")
	a := Binned{K: 3, Classes: []int{0, 2}}
	b := Binned{K: 3, Classes: []int{0, 2}}
	got, err := ColorizeBinned(a, b, spec)
	if err != nil {
		t.Fatalf("ColorizeBinned() error = %v", err)
	}
	if got[0] != spec.Blend(0, 0) || got[1] != spec.Blend(1, 1) {
		t.Errorf("ColorizeBinned() = %v", got)
	}

	_, err = ColorizeBinned(a, Binned{K: 1, Classes: []int{0, 0}}, spec)
	if !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("single-class axis error = %v", err)
	}
}

func TestColorizeErrors(t *testing.T) {
	spec := MustNamed(DefaultPalette)
	tests := []struct {
		name    string
		a, b    []float64
		wantErr error
	}{
		{"length mismatch", []float64{1, 2}, []float64{1}, ErrInvalidParameter},
		{"constant a", []float64{3, 3}, []float64{1, 2}, ErrDegenerateRange},
		{"constant b", []float64{1, 2}, []float64{7, 7}, ErrDegenerateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Colorize(tt.a, tt.b, spec); !errors.Is(err, tt.wantErr) {
				t.Errorf("Colorize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if _, err := ColorizePositions([]float64{0}, nil, spec); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ColorizePositions() error = %v", err)
	}
}

func TestDarkTiles(t *testing.T) {
	tests := map[string]bool{
		"CartoDB DarkMatter": true,
		"cartodbdark_matter": true,
		"OpenStreetMap":      false,
		"":                   false,
	}
	for name, want := range tests {
		if got := DarkTiles(name); got != want {
			t.Errorf("DarkTiles(%q) = %v, want %v", name, got, want)
		}
	}
}
