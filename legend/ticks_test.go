// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/bivariate"
)

func TestNumericTicks(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string // a label that must appear
	}{
		{"thousands", []float64{0, 750, 1500}, "1,000"},
		{"hundred", []float64{0, 42, 100}, "100"},
		{"unit", []float64{0, 0.3, 1}, "1"},
		{"negative", []float64{-100, 10, 100}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks, err := numericTicks(tt.values)
			if err != nil {
				t.Fatalf("numericTicks() error = %v", err)
			}
			if len(ticks) < 2 || len(ticks) > maxNumericTicks {
				t.Fatalf("numericTicks() = %+v", ticks)
			}
			var labels []string
			prev := -1.0
			for _, tk := range ticks {
				if tk.pos < 0 || tk.pos > 1 || tk.pos <= prev {
					t.Errorf("tick positions not ascending within [0, 1]: %+v", ticks)
				}
				prev = tk.pos
				labels = append(labels, tk.label)
			}
			if !slices.Contains(labels, tt.want) {
				t.Errorf("labels = %q, want %q among them", labels, tt.want)
			}
		})
	}
}

func TestNumericTicksErrors(t *testing.T) {
	if _, err := numericTicks([]float64{2, 2}); !errors.Is(err, bivariate.ErrDegenerateRange) {
		t.Errorf("constant values error = %v", err)
	}
	if _, err := numericTicks(nil); !errors.Is(err, bivariate.ErrInvalidParameter) {
		t.Errorf("empty values error = %v", err)
	}
}

func TestLabelTicks(t *testing.T) {
	ticks := labelTicks([]string{"low", "mid", "high"})
	want := []tick{{0, "low"}, {0.5, "mid"}, {1, "high"}}
	if !slices.Equal(ticks, want) {
		t.Errorf("labelTicks() = %+v, want %+v", ticks, want)
	}
	if got := labelTicks([]string{"only"}); len(got) != 1 || got[0].pos != 0 {
		t.Errorf("labelTicks(one) = %+v", got)
	}
}

func TestClassLabels(t *testing.T) {
	if got := classLabels(3); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("classLabels(3) = %q", got)
	}
}

func TestAxisTicks(t *testing.T) {
	explicit := ContinuousAxis("x", []float64{1, 2})
	explicit.TickLabels = []string{"few", "many"}
	ticks, err := explicit.ticks()
	if err != nil || len(ticks) != 2 || ticks[1].label != "many" {
		t.Errorf("explicit ticks = %+v, %v", ticks, err)
	}

	numbered := BinnedAxis("k", bivariate.Binned{K: 4, Classes: []int{0, 3}})
	ticks, err = numbered.ticks()
	if err != nil || len(ticks) != 4 || ticks[3].label != "4" {
		t.Errorf("numbered ticks = %+v, %v", ticks, err)
	}
	if numbered.resolution(100) != 4 {
		t.Errorf("binned resolution = %d, want 4", numbered.resolution(100))
	}
	if explicit.resolution(100) != 100 {
		t.Errorf("continuous resolution = %d", explicit.resolution(100))
	}
}
