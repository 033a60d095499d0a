package text

import (
	"slices"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the writing direction of a run.
type Direction uint8

const (
	// DirectionLTR is left-to-right text.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Run is a maximal span of runes sharing one direction.
// Start and End are rune indices, End exclusive.
type Run struct {
	Start     int
	End       int
	Direction Direction
}

// Runs splits s into directional runs in logical order.
func Runs(s string) []Run {
	return runsOf([]rune(s))
}

func runsOf(runes []rune) []Run {
	if len(runes) == 0 {
		return nil
	}
	dirs := directions(runes)

	var runs []Run
	start := 0
	for i := 1; i <= len(dirs); i++ {
		if i == len(dirs) || dirs[i] != dirs[start] {
			runs = append(runs, Run{Start: start, End: i, Direction: dirs[start]})
			start = i
		}
	}
	return runs
}

// directions resolves a direction per rune with the Unicode bidi
// algorithm. If the algorithm fails, everything is treated as LTR.
func directions(runes []rune) []Direction {
	dirs := make([]Direction, len(runes))

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return dirs
	}
	ordering, err := p.Order()
	if err != nil {
		return dirs
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			continue
		}
		start, end := run.Pos()
		for j := start; j <= end && j < len(dirs); j++ {
			dirs[j] = DirectionRTL
		}
	}
	return dirs
}

// Visual returns s in display order for a left-to-right line: every
// right-to-left run is reversed in place. Contextual letter forms are not
// applied.
func Visual(s string) string {
	runes := []rune(s)
	for _, run := range runsOf(runes) {
		if run.Direction == DirectionRTL {
			slices.Reverse(runes[run.Start:run.End])
		}
	}
	return string(runes)
}
