package bivariate

import (
	"maps"
	"slices"
)

// Palette anchors the four corners of the bivariate square.
//
//	AccentB ---- High
//	   |          |
//	  Low  ---- AccentA
//
// Low is the origin, AccentA the maximum of axis a alone, AccentB the
// maximum of axis b alone and High both maxima together.
type Palette struct {
	AccentA Color
	AccentB Color
	Low     Color
	High    Color
}

// Validate checks every corner colour.
func (p Palette) Validate() error {
	for _, c := range [...]Color{p.AccentA, p.AccentB, p.Low, p.High} {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultPalette is used when no palette is selected.
const DefaultPalette = "electric_neon"

// LookupPalette returns the registered palette with the given name.
func LookupPalette(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, &UnknownPaletteError{Name: name, Kind: "palette"}
	}
	return p, nil
}

// MustPalette is like LookupPalette but panics on a miss.
func MustPalette(name string) Palette {
	p, err := LookupPalette(name)
	if err != nil {
		panic(err)
	}
	return p
}

// PaletteNames returns the registered palette names in sorted order.
func PaletteNames() []string {
	return slices.Sorted(maps.Keys(palettes))
}

// palettes is read-only after package initialisation.
var palettes = map[string]Palette{
	"plum_mint": {
		AccentA: RGB(0.66, 0.36, 0.80),
		AccentB: RGB(0.07, 0.64, 0.58),
		Low:     RGB(0.97, 0.94, 0.70),
		High:    RGB(0.12, 0.14, 0.40),
	},
	"peacock_court": {
		AccentA: RGB(0.58, 0.18, 0.70),
		AccentB: RGB(0.10, 0.58, 0.66),
		Low:     RGB(0.98, 0.97, 0.86),
		High:    RGB(0.10, 0.12, 0.22),
	},
	"rosewood_pine": {
		AccentA: RGB(0.88, 0.26, 0.60),
		AccentB: RGB(0.07, 0.62, 0.40),
		Low:     RGB(0.98, 0.96, 0.72),
		High:    RGB(0.14, 0.20, 0.36),
	},
	"flamingo_lagoon": {
		AccentA: RGB(0.96, 0.44, 0.60),
		AccentB: RGB(0.14, 0.70, 0.56),
		Low:     RGB(0.99, 0.98, 0.92),
		High:    RGB(0.12, 0.18, 0.22),
	},
	"sunrise_harbor": {
		AccentA: RGB(0.95, 0.40, 0.20),
		AccentB: RGB(0.10, 0.62, 0.65),
		Low:     RGB(0.98, 0.94, 0.60),
		High:    RGB(0.12, 0.18, 0.50),
	},
	"coral_ocean": {
		AccentA: RGB(0.94, 0.43, 0.46),
		AccentB: RGB(0.06, 0.64, 0.68),
		Low:     RGB(0.98, 0.95, 0.68),
		High:    RGB(0.12, 0.22, 0.42),
	},
	"glacier_ember": {
		AccentA: RGB(0.94, 0.48, 0.22),
		AccentB: RGB(0.10, 0.48, 0.70),
		Low:     RGB(1.00, 1.00, 0.98),
		High:    RGB(0.12, 0.14, 0.28),
	},
	"verdant_orchard": {
		AccentA: RGB(0.68, 0.28, 0.72),
		AccentB: RGB(0.18, 0.72, 0.40),
		Low:     RGB(0.98, 0.97, 0.72),
		High:    RGB(0.14, 0.16, 0.34),
	},
	"frosted_marigold": {
		AccentA: RGB(0.96, 0.62, 0.18),
		AccentB: RGB(0.12, 0.56, 0.52),
		Low:     RGB(0.99, 0.99, 0.96),
		High:    RGB(0.10, 0.12, 0.18),
	},
	"marigold_current": {
		AccentA: RGB(0.98, 0.58, 0.12),
		AccentB: RGB(0.10, 0.52, 0.68),
		Low:     RGB(0.99, 0.96, 0.70),
		High:    RGB(0.12, 0.18, 0.34),
	},
	"amber_drift": {
		AccentA: RGB(0.96, 0.50, 0.18),
		AccentB: RGB(0.12, 0.46, 0.72),
		Low:     RGB(0.99, 0.96, 0.64),
		High:    RGB(0.12, 0.16, 0.38),
	},
	"triadic_garden": {
		AccentA: RGB(0.66, 0.32, 0.82),
		AccentB: RGB(0.94, 0.48, 0.18),
		Low:     RGB(0.98, 0.97, 0.86),
		High:    RGB(0.14, 0.16, 0.34),
	},
	"electric_neon": {
		AccentA: RGB(0.12, 0.86, 0.78),
		AccentB: RGB(0.94, 0.30, 0.34),
		Low:     RGB(0.99, 0.97, 0.88),
		High:    RGB(0.14, 0.16, 0.32),
	},
	"solar_pasture": {
		AccentA: RGB(0.98, 0.74, 0.18),
		AccentB: RGB(0.14, 0.66, 0.44),
		Low:     RGB(0.99, 0.98, 0.90),
		High:    RGB(0.12, 0.16, 0.30),
	},
	"jungle_roar": {
		AccentA: RGB(0.96, 0.48, 0.16),
		AccentB: RGB(0.12, 0.62, 0.38),
		Low:     RGB(0.99, 0.97, 0.68),
		High:    RGB(0.08, 0.14, 0.12),
	},
	"citrus_forest": {
		AccentA: RGB(0.90, 0.50, 0.10),
		AccentB: RGB(0.15, 0.65, 0.45),
		Low:     RGB(0.95, 0.95, 0.60),
		High:    RGB(0.10, 0.15, 0.40),
	},
	"berry_bush": {
		AccentA: RGB(0.75, 0.20, 0.40),
		AccentB: RGB(0.20, 0.60, 0.50),
		Low:     RGB(0.95, 0.90, 0.85),
		High:    RGB(0.15, 0.15, 0.45),
	},
	// Sherbet orange against pastel plum on a creamy base.
	"late_sunset": {
		AccentA: RGB(0.98, 0.56, 0.12),
		AccentB: RGB(0.92, 0.20, 0.78),
		Low:     RGB(0.99, 0.98, 0.92),
		High:    RGB(0.12, 0.16, 0.34),
	},
	"bubblegum": {
		AccentA: RGB(0.10, 0.78, 0.86),
		AccentB: RGB(0.94, 0.30, 0.56),
		Low:     RGB(0.99, 0.96, 0.86),
		High:    RGB(0.14, 0.16, 0.34),
	},
	// Saturated low corner: neither extreme is neutral.
	"kaleidoscope": {
		AccentA: RGB(0.12, 0.96, 0.82),
		AccentB: RGB(0.96, 0.28, 0.54),
		Low:     RGB(0.98, 0.72, 0.20),
		High:    RGB(0.46, 0.30, 0.96),
	},
	"radiant_shift": {
		AccentA: RGB(0.98, 0.82, 0.28),
		AccentB: RGB(0.78, 0.46, 0.86),
		Low:     RGB(0.99, 0.98, 0.92),
		High:    RGB(0.36, 0.28, 0.92),
	},
	"blade_runner": {
		AccentA: RGB(0.10, 0.60, 0.70),
		AccentB: RGB(0.96, 0.50, 0.18),
		Low:     RGB(0.99, 0.97, 0.86),
		High:    RGB(0.14, 0.16, 0.34),
	},
	"grand_budapest": {
		AccentA: RGB(0.94, 0.56, 0.78),
		AccentB: RGB(0.72, 0.36, 0.88),
		Low:     RGB(0.99, 0.98, 0.96),
		High:    RGB(0.16, 0.12, 0.26),
	},
	"folk_warmth": {
		AccentA: RGB(0.92, 0.56, 0.22),
		AccentB: RGB(0.78, 0.46, 0.62),
		Low:     RGB(0.99, 0.97, 0.90),
		High:    RGB(0.12, 0.14, 0.28),
	},
	"earth": {
		AccentA: RGB(0.18, 0.56, 0.36),
		AccentB: RGB(0.86, 0.66, 0.38),
		Low:     RGB(0.99, 0.98, 0.90),
		High:    RGB(0.10, 0.12, 0.20),
	},
	"Library Ocean": {
		AccentA: RGB(0.69, 0.85, 0.96),
		AccentB: RGB(0.18, 0.56, 0.86),
		Low:     RGB(0.96, 0.98, 0.99),
		High:    RGB(0.06, 0.22, 0.48),
	},
	"Library Ocean Sunset": {
		AccentA: RGB(0.66, 0.84, 0.94),
		AccentB: RGB(0.18, 0.54, 0.86),
		Low:     RGB(0.98, 0.88, 0.72),
		High:    RGB(0.06, 0.20, 0.46),
	},
	"Library Ocean Sunset (Warm Accents)": {
		AccentA: RGB(0.98, 0.52, 0.18),
		AccentB: RGB(0.86, 0.28, 0.60),
		Low:     RGB(0.98, 0.88, 0.72),
		High:    RGB(0.06, 0.20, 0.46),
	},
	"Library Ocean Sunset (Blue Accent, Softer Abyss)": {
		AccentA: RGB(0.12, 0.56, 0.86),
		AccentB: RGB(0.96, 0.48, 0.20),
		Low:     RGB(0.98, 0.88, 0.72),
		High:    RGB(0.18, 0.36, 0.56),
	},
	"Library Ocean Sunset (Sunset Accents, Blue Depths)": {
		AccentA: RGB(0.98, 0.48, 0.12),
		AccentB: RGB(0.12, 0.56, 0.86),
		Low:     RGB(0.88, 0.94, 0.98),
		High:    RGB(0.20, 0.36, 0.60),
	},
}
