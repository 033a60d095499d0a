package bivariate

import (
	"image"

	"github.com/aclements/go-moremath/vec"
)

// Grid is a legend swatch: Grid[i][j] is the colour at the i-th b position
// and the j-th a position, so its shape is (resolutionB, resolutionA).
// Row 0 is b = 0 and column 0 is a = 0.
type Grid [][]Color

// Linspace returns n evenly spaced samples over [0, 1] including both
// endpoints. n = 1 degenerates to a single sample at 0.
func Linspace(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	return vec.Linspace(0, 1, n)
}

// BuildGrid evaluates spec over a resolutionA x resolutionB lattice.
// Resolutions are independent so that one axis can be binned into k
// classes while the other stays continuous.
func BuildGrid(resolutionA, resolutionB int, spec BlendSpec) (Grid, error) {
	if resolutionA < 1 {
		return nil, invalidParam("resolution a", resolutionA, "must be at least 1")
	}
	if resolutionB < 1 {
		return nil, invalidParam("resolution b", resolutionB, "must be at least 1")
	}

	as := Linspace(resolutionA)
	bs := Linspace(resolutionB)

	grid := make(Grid, resolutionB)
	for i, pb := range bs {
		row := make([]Color, resolutionA)
		for j, pa := range as {
			row[j] = spec.Blend(pa, pb)
		}
		grid[i] = row
	}

	Logger().Debug("legend grid built",
		"kind", spec.Kind().String(),
		"resolution_a", resolutionA,
		"resolution_b", resolutionB)
	return grid, nil
}

// Shape returns (rows, columns), i.e. (resolutionB, resolutionA).
func (g Grid) Shape() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Image converts the grid to an image with one pixel per cell. The origin
// is at the lower left: grid row 0 becomes the bottom image row, so axis b
// increases upwards and axis a to the right.
func (g Grid) Image() *image.RGBA {
	rows, cols := g.Shape()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i, row := range g {
		y := rows - 1 - i
		for x, c := range row {
			img.Set(x, y, c.NRGBA())
		}
	}
	return img
}
