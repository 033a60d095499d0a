package bivariate

import (
	"maps"
	"slices"
	"sort"
)

// ColorStop is a colour at a position on a ramp.
type ColorStop struct {
	Offset float64 // Position on the ramp, 0.0 to 1.0
	Color  Color
}

// Ramp is a one-dimensional sequential colormap. It maps a unit position
// to a colour by interpolating its stops in OkLab.
// The zero Ramp is not usable; build ramps with NewRamp or LookupRamp.
type Ramp struct {
	name  string
	stops []ColorStop
	labs  []Lab
}

// NewRamp builds a ramp from at least two stops. Stops are sorted by
// offset; offsets and colours must lie within [0, 1].
func NewRamp(name string, stops []ColorStop) (Ramp, error) {
	if len(stops) < 2 {
		return Ramp{}, invalidParam("ramp stops", len(stops), "need at least two stops")
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	labs := make([]Lab, len(sorted))
	for i, s := range sorted {
		if s.Offset < 0 || s.Offset > 1 {
			return Ramp{}, invalidParam("ramp offset", s.Offset, "must be within [0, 1]")
		}
		if err := s.Color.Validate(); err != nil {
			return Ramp{}, err
		}
		labs[i] = ToPerceptual(s.Color)
	}
	return Ramp{name: name, stops: sorted, labs: labs}, nil
}

// evenRamp spreads hex colours evenly over [0, 1].
func evenRamp(name string, hexes ...string) Ramp {
	stops := make([]ColorStop, len(hexes))
	for i, h := range hexes {
		stops[i] = ColorStop{
			Offset: float64(i) / float64(len(hexes)-1),
			Color:  MustParseHex(h),
		}
	}
	r, err := NewRamp(name, stops)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the ramp's registry name, if any.
func (r Ramp) Name() string { return r.name }

// Stops returns a copy of the ramp's colour stops.
func (r Ramp) Stops() []ColorStop {
	return slices.Clone(r.stops)
}

// At returns the perceptual colour at position t. Positions outside
// [0, 1] are clamped to the end stops.
func (r Ramp) At(t float64) Lab {
	if len(r.labs) == 0 {
		return Lab{}
	}
	t = clamp01(t)

	idx := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].Offset >= t
	})
	if idx == 0 {
		return r.labs[0]
	}
	if idx >= len(r.stops) {
		return r.labs[len(r.labs)-1]
	}

	lo, hi := r.stops[idx-1], r.stops[idx]
	span := hi.Offset - lo.Offset
	if span <= 0 {
		return r.labs[idx]
	}
	return r.labs[idx-1].Lerp(r.labs[idx], (t-lo.Offset)/span)
}

// ColorAt is At converted to device space.
func (r Ramp) ColorAt(t float64) Color {
	return ToDevice(r.At(t))
}

// LookupRamp returns a registered sequential ramp.
func LookupRamp(name string) (Ramp, error) {
	r, ok := ramps[name]
	if !ok {
		return Ramp{}, &UnknownPaletteError{Name: name, Kind: "ramp"}
	}
	return r, nil
}

// RampNames returns the registered ramp names in sorted order.
func RampNames() []string {
	return slices.Sorted(maps.Keys(ramps))
}

// ColorBrewer single-hue sequential schemes, light to dark.
// Colors by Cynthia Brewer, http://colorbrewer.org/.
var ramps = map[string]Ramp{
	"Blues": evenRamp("Blues",
		"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1", "#6BAED6",
		"#4292C6", "#2171B5", "#08519C", "#08306B"),
	"Greens": evenRamp("Greens",
		"#F7FCF5", "#E5F5E0", "#C7E9C0", "#A1D99B", "#74C476",
		"#41AB5D", "#238B45", "#006D2C", "#00441B"),
	"Greys": evenRamp("Greys",
		"#FFFFFF", "#F0F0F0", "#D9D9D9", "#BDBDBD", "#969696",
		"#737373", "#525252", "#252525", "#000000"),
	"Oranges": evenRamp("Oranges",
		"#FFF5EB", "#FEE6CE", "#FDD0A2", "#FDAE6B", "#FD8D3C",
		"#F16913", "#D94801", "#A63603", "#7F2704"),
	"Purples": evenRamp("Purples",
		"#FCFBFD", "#EFEDF5", "#DADAEB", "#BCBDDC", "#9E9AC8",
		"#807DBA", "#6A51A3", "#54278F", "#3F007D"),
	"Reds": evenRamp("Reds",
		"#FFF5F0", "#FEE0D2", "#FCBBA1", "#FC9272", "#FB6A4A",
		"#EF3B2C", "#CB181D", "#A50F15", "#67000D"),
}
