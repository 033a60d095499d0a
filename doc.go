// Package bivariate blends two independent quantities into one colour per
// observation.
//
// # Overview
//
// A bivariate colour encodes two values at once: one axis pulls the colour
// toward one accent, the other axis toward a second accent, and both
// together toward a dark (or light) corner. Blending happens in the OkLab
// perceptual space so that equal steps look even, and results are clamped
// back into sRGB.
//
// # Quick Start
//
//	spec, err := bivariate.Named("electric_neon")
//	if err != nil {
//	    return err
//	}
//	colors, err := bivariate.Colorize(valuesA, valuesB, spec)
//	if err != nil {
//	    return err
//	}
//	hex := bivariate.HexColors(colors) // "#rrggbb" per observation
//
// # Blend topologies
//
// A BlendSpec selects one of four topologies:
//   - Corners: bilinear blend of four explicit corner colours
//   - Named: Corners over a palette from the registry (see PaletteNames)
//   - Accents: Corners with neutral low/high defaults
//   - ColormapPair: diagonal blend of two sequential ramps (see RampNames)
//
// # Legends
//
// The legend sub-package renders the matching two-dimensional legend and
// fits its data area to an exact pixel size.
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to route diagnostics to a
// log/slog logger.
package bivariate
