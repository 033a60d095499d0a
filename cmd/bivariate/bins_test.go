package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/bivariate"
)

func TestEqualInterval(t *testing.T) {
	b, err := equalInterval([]float64{0, 2.5, 5, 7.5, 10}, 4)
	if err != nil {
		t.Fatalf("equalInterval() error = %v", err)
	}
	if want := []int{0, 0, 1, 2, 3}; !slices.Equal(b.Classes, want) {
		t.Errorf("Classes = %v, want %v", b.Classes, want)
	}
	want := []string{"[0, 2.5]", "(2.5, 5]", "(5, 7.5]", "(7.5, 10]"}
	if !slices.Equal(b.Labels, want) {
		t.Errorf("Labels = %q, want %q", b.Labels, want)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestEqualIntervalErrors(t *testing.T) {
	if _, err := equalInterval([]float64{3, 3}, 3); !errors.Is(err, bivariate.ErrDegenerateRange) {
		t.Errorf("constant values error = %v", err)
	}
	if _, err := equalInterval([]float64{1, 2}, 1); err == nil {
		t.Error("one class should fail")
	}
	if _, err := equalInterval(nil, 3); err == nil {
		t.Error("no values should fail")
	}
}

func TestAxisPositions(t *testing.T) {
	got, err := axisPositions([]float64{0, 5, 10}, 0)
	if err != nil || !slices.Equal(got, []float64{0, 0.5, 1}) {
		t.Errorf("continuous positions = %v, %v", got, err)
	}
	got, err = axisPositions([]float64{0, 4, 10}, 2)
	if err != nil || !slices.Equal(got, []float64{0, 0, 1}) {
		t.Errorf("binned positions = %v, %v", got, err)
	}
}
