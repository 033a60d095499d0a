package text

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRuns(t *testing.T) {
	if runs := Runs(""); runs != nil {
		t.Errorf("Runs(\"\") = %+v", runs)
	}

	runs := Runs("Value A")
	if len(runs) != 1 || runs[0] != (Run{Start: 0, End: 7, Direction: DirectionLTR}) {
		t.Errorf("Runs(Latin) = %+v", runs)
	}

	runs = Runs("שלום")
	if len(runs) != 1 || runs[0].Direction != DirectionRTL || runs[0].End != 4 {
		t.Errorf("Runs(Hebrew) = %+v", runs)
	}
}

func TestRunsMixed(t *testing.T) {
	s := "Hello مرحبا World"
	runs := Runs(s)
	if len(runs) < 3 {
		t.Fatalf("Runs() = %+v, want at least 3 runs", runs)
	}

	var hasRTL bool
	next := 0
	for _, r := range runs {
		if r.Start != next || r.End <= r.Start {
			t.Fatalf("runs not contiguous: %+v", runs)
		}
		next = r.End
		if r.Direction == DirectionRTL {
			hasRTL = true
		}
	}
	if next != len([]rune(s)) {
		t.Errorf("runs cover %d runes, want %d", next, len([]rune(s)))
	}
	if !hasRTL {
		t.Error("expected an RTL run")
	}
	if runs[0].Direction != DirectionLTR {
		t.Errorf("first run = %+v, want LTR", runs[0])
	}
}

func TestVisual(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Value B", "Value B"},
		{"שלום", "םולש"},
	}
	for _, tt := range tests {
		if got := Visual(tt.in); got != tt.want {
			t.Errorf("Visual(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
