package bivariate

import "fmt"

// BlendKind identifies the topology of a BlendSpec.
type BlendKind uint8

const (
	// KindCorners blends four explicit corner colours bilinearly.
	KindCorners BlendKind = iota
	// KindNamed blends the corners of a registered palette.
	KindNamed
	// KindAccents blends two accents over neutral low/high corners.
	KindAccents
	// KindColormapPair blends two sequential ramps along the diagonal.
	KindColormapPair
)

// String returns the string representation of the kind.
func (k BlendKind) String() string {
	switch k {
	case KindCorners:
		return "Corners"
	case KindNamed:
		return "Named"
	case KindAccents:
		return "Accents"
	case KindColormapPair:
		return "ColormapPair"
	default:
		return fmt.Sprintf("BlendKind(%d)", uint8(k))
	}
}

// BlendSpec fully determines how two axis positions become one colour.
//
// Corners, Named and Accents all evaluate the same bilinear corner blend;
// they differ only in how the corners are chosen. ColormapPair is a
// separate diagonal topology and is not expressible as a corner blend.
//
// A BlendSpec is immutable and safe for concurrent use.
type BlendSpec struct {
	kind    BlendKind
	name    string
	palette Palette

	// Perceptual corners, precomputed for the corner topologies.
	low, accentA, accentB, high Lab

	rampA, rampB Ramp
}

// Corners returns a spec blending four explicit corner colours.
func Corners(accentA, accentB, low, high Color) (BlendSpec, error) {
	return fromPalette(KindCorners, "", Palette{AccentA: accentA, AccentB: accentB, Low: low, High: high})
}

// CornersFromPalette returns a Corners spec for p.
func CornersFromPalette(p Palette) (BlendSpec, error) {
	return fromPalette(KindCorners, "", p)
}

// Named returns a spec for the registered palette name.
func Named(name string) (BlendSpec, error) {
	p, err := LookupPalette(name)
	if err != nil {
		return BlendSpec{}, err
	}
	return fromPalette(KindNamed, name, p)
}

// MustNamed is like Named but panics for an unregistered name.
func MustNamed(name string) BlendSpec {
	s, err := Named(name)
	if err != nil {
		panic(err)
	}
	return s
}

// AccentOption configures an Accents spec.
type AccentOption func(*accentOptions)

type accentOptions struct {
	dark      bool
	low, high *Color
}

// WithDarkMode swaps the neutral defaults so that the origin is near-black
// and the high corner near-white, which reads better on dark basemaps.
func WithDarkMode(dark bool) AccentOption {
	return func(o *accentOptions) {
		o.dark = dark
	}
}

// WithLow overrides the origin corner.
func WithLow(c Color) AccentOption {
	return func(o *accentOptions) {
		o.low = &c
	}
}

// WithHigh overrides the corner where both axes are at their maximum.
func WithHigh(c Color) AccentOption {
	return func(o *accentOptions) {
		o.high = &c
	}
}

// Accents returns a corner spec built from two accent colours.
// Low and high default to near-white and near-black (reversed in dark mode).
func Accents(accentA, accentB Color, opts ...AccentOption) (BlendSpec, error) {
	var o accentOptions
	for _, opt := range opts {
		opt(&o)
	}

	low, high := nearWhite, nearBlack
	if o.dark {
		low, high = high, low
	}
	if o.low != nil {
		low = *o.low
	}
	if o.high != nil {
		high = *o.high
	}
	return fromPalette(KindAccents, "", Palette{AccentA: accentA, AccentB: accentB, Low: low, High: high})
}

// ColormapPair returns a diagonal spec over two sequential ramps.
//
// Each ramp is sampled at its own axis position and the two samples are
// mixed with weight t = (posB - posA + 1) / 2 toward rampB. The blend runs
// along the diagonal, not bilinearly: at posA == posB the weight is 0.5
// whatever the magnitude, so (0,0) and (1,1) both mix the ramps evenly,
// while (1,0) is rampA's end and (0,1) is rampB's end.
func ColormapPair(rampA, rampB Ramp) (BlendSpec, error) {
	if len(rampA.labs) == 0 || len(rampB.labs) == 0 {
		return BlendSpec{}, invalidParam("ramp", "empty", "build ramps with NewRamp or LookupRamp")
	}
	return BlendSpec{kind: KindColormapPair, rampA: rampA, rampB: rampB}, nil
}

// NamedColormapPair looks up two registered ramps, e.g. "Oranges" and "Blues".
func NamedColormapPair(nameA, nameB string) (BlendSpec, error) {
	a, err := LookupRamp(nameA)
	if err != nil {
		return BlendSpec{}, err
	}
	b, err := LookupRamp(nameB)
	if err != nil {
		return BlendSpec{}, err
	}
	return ColormapPair(a, b)
}

func fromPalette(kind BlendKind, name string, p Palette) (BlendSpec, error) {
	if err := p.Validate(); err != nil {
		return BlendSpec{}, err
	}
	return BlendSpec{
		kind:    kind,
		name:    name,
		palette: p,
		low:     ToPerceptual(p.Low),
		accentA: ToPerceptual(p.AccentA),
		accentB: ToPerceptual(p.AccentB),
		high:    ToPerceptual(p.High),
	}, nil
}

// Kind returns the blend topology.
func (s BlendSpec) Kind() BlendKind { return s.kind }

// Name returns the palette name for Named specs and "" otherwise.
func (s BlendSpec) Name() string { return s.name }

// Palette returns the corner palette. It reports false for ColormapPair.
func (s BlendSpec) Palette() (Palette, bool) {
	if s.kind == KindColormapPair {
		return Palette{}, false
	}
	return s.palette, true
}

// Blend returns the device colour for a pair of axis positions.
// Positions are expected in [0, 1]; values outside extrapolate for the
// corner topologies and clamp for ColormapPair, and the result is always
// clamped to the device gamut.
func (s BlendSpec) Blend(posA, posB float64) Color {
	return ToDevice(s.BlendPerceptual(posA, posB))
}

// BlendPerceptual is Blend without the final conversion to device space.
func (s BlendSpec) BlendPerceptual(posA, posB float64) Lab {
	if s.kind == KindColormapPair {
		posA, posB = clamp01(posA), clamp01(posB)
		t := (posB - posA + 1) / 2
		return s.rampA.At(posA).Lerp(s.rampB.At(posB), t)
	}
	bottom := s.low.Lerp(s.accentA, posA)
	top := s.accentB.Lerp(s.high, posA)
	return bottom.Lerp(top, posB)
}

// Blend is the package-level form of spec.Blend.
func Blend(posA, posB float64, spec BlendSpec) Color {
	return spec.Blend(posA, posB)
}
