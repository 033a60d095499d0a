package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/bivariate"
	"github.com/gogpu/bivariate/legend"
)

// Context is passed to every command's Run method.
type Context struct {
	Verbose bool
	// Stdout is where results are written; nil means os.Stdout.
	Stdout io.Writer
}

func (c *Context) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// CLI is the kong command tree.
type CLI struct {
	Verbose bool `short:"v" help:"Log diagnostics to stderr."`

	Colorize ColorizeCmd `cmd:"" help:"Blend two CSV columns into one colour per row."`
	Legend   LegendCmd   `cmd:"" help:"Render a legend PNG for two CSV columns."`
	Palettes PalettesCmd `cmd:"" help:"Preview every registered palette."`
}

func (c *CLI) configureLogging() {
	if !c.Verbose {
		return
	}
	bivariate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// SpecFlags selects a blend topology. Ramps and accents take precedence
// over the palette name.
type SpecFlags struct {
	Palette string   `short:"p" help:"Named palette." default:"${default_palette}"`
	Ramps   []string `help:"Two sequential ramps for a colormap-pair blend, e.g. Oranges,Blues." sep:","`
	Accents []string `help:"Two accent colours as hex, e.g. '#1fdbc7,#f04d57'." sep:","`
	Dark    bool     `help:"Dark background: swap the neutral corners of an accent blend."`
}

func (f SpecFlags) spec() (bivariate.BlendSpec, error) {
	switch {
	case len(f.Ramps) > 0:
		if len(f.Ramps) != 2 {
			return bivariate.BlendSpec{}, fmt.Errorf("--ramps needs two names, got %d", len(f.Ramps))
		}
		return bivariate.NamedColormapPair(f.Ramps[0], f.Ramps[1])
	case len(f.Accents) > 0:
		if len(f.Accents) != 2 {
			return bivariate.BlendSpec{}, fmt.Errorf("--accents needs two colours, got %d", len(f.Accents))
		}
		a, err := bivariate.ParseHex(f.Accents[0])
		if err != nil {
			return bivariate.BlendSpec{}, err
		}
		b, err := bivariate.ParseHex(f.Accents[1])
		if err != nil {
			return bivariate.BlendSpec{}, err
		}
		return bivariate.Accents(a, b, bivariate.WithDarkMode(f.Dark))
	default:
		return bivariate.Named(f.Palette)
	}
}

// ColumnFlags names the input file and its two value columns.
type ColumnFlags struct {
	File string `arg:"" type:"existingfile" help:"CSV file with a header row."`
	ColA string `name:"col-a" required:"" help:"Column for axis a."`
	ColB string `name:"col-b" required:"" help:"Column for axis b."`
}

func (f ColumnFlags) read() (a, b []float64, err error) {
	in, err := os.Open(f.File)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()
	cols, err := readColumns(in, f.ColA, f.ColB)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f.File, err)
	}
	return cols[0], cols[1], nil
}

// ColorizeCmd writes hex,opacity per input row.
type ColorizeCmd struct {
	ColumnFlags `embed:""`
	SpecFlags   `embed:""`
	BinFlags    `embed:""`

	OpacityQuantile float64 `name:"opacity-quantile" default:"${default_quantile}" help:"Per-axis quantile q; opacity is sqrt(min(1, max(a/qa, b/qb)))."`
	Preview         bool    `help:"Print a swatch preview to stderr."`
}

func (c *ColorizeCmd) Run(ctx *Context) error {
	spec, err := c.spec()
	if err != nil {
		return err
	}
	a, b, err := c.read()
	if err != nil {
		return err
	}
	posA, err := axisPositions(a, c.BinsA)
	if err != nil {
		return fmt.Errorf("axis a: %w", err)
	}
	posB, err := axisPositions(b, c.BinsB)
	if err != nil {
		return fmt.Errorf("axis b: %w", err)
	}
	colors, err := bivariate.ColorizePositions(posA, posB, spec)
	if err != nil {
		return err
	}
	opacity, err := bivariate.Opacity(a, b, c.OpacityQuantile)
	if err != nil {
		return err
	}

	w := csv.NewWriter(ctx.stdout())
	if err := w.Write([]string{"hex", "opacity"}); err != nil {
		return err
	}
	for i, col := range colors {
		if err := w.Write([]string{col.Hex(), strconv.FormatFloat(opacity[i], 'f', 4, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if c.Preview {
		fmt.Fprintln(os.Stderr, previewSwatches(colors, 16))
	}
	return nil
}

// LegendCmd renders a legend PNG.
type LegendCmd struct {
	ColumnFlags `embed:""`
	SpecFlags   `embed:""`
	BinFlags    `embed:""`

	Out       string  `short:"o" default:"legend.png" help:"Output PNG path."`
	Size      int     `default:"200" help:"Data area size in pixels."`
	Tolerance float64 `default:"0.1" help:"Fit tolerance in pixels."`
	DPI       float64 `name:"dpi" default:"100" help:"Canvas resolution."`
	Grid      int     `help:"Swatch grid resolution per axis (0 = automatic)."`
	LabelA    string  `name:"label-a" help:"Axis a label (defaults to the column name)."`
	LabelB    string  `name:"label-b" help:"Axis b label (defaults to the column name)."`
	Font      string  `type:"existingfile" help:"TrueType/OpenType font for labels."`
}

func (c *LegendCmd) Run(ctx *Context) error {
	spec, err := c.spec()
	if err != nil {
		return err
	}
	a, b, err := c.read()
	if err != nil {
		return err
	}

	opts := []legend.Option{
		legend.WithSize(c.Size),
		legend.WithTolerance(c.Tolerance),
		legend.WithDPI(c.DPI),
		legend.WithDarkMode(c.Dark),
	}
	if c.Grid > 0 {
		opts = append(opts, legend.WithGridResolution(c.Grid))
	}
	if c.Font != "" {
		data, err := os.ReadFile(c.Font)
		if err != nil {
			return err
		}
		opts = append(opts, legend.WithFontData(data))
	}

	labelA, labelB := firstNonEmpty(c.LabelA, c.ColA), firstNonEmpty(c.LabelB, c.ColB)
	axisA, err := legendAxis(labelA, a, c.BinsA)
	if err != nil {
		return fmt.Errorf("axis a: %w", err)
	}
	axisB, err := legendAxis(labelB, b, c.BinsB)
	if err != nil {
		return fmt.Errorf("axis b: %w", err)
	}
	l, err := legend.Render(spec, axisA, axisB, opts...)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := l.WritePNG(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.stdout(), "%s: %dx%d, data area %v\n", c.Out, l.Width, l.Height, l.DataArea)
	return nil
}

// PalettesCmd previews the palette registry and ramp names.
type PalettesCmd struct {
	Steps int `default:"5" help:"Swatch cells per axis."`
}

func (c *PalettesCmd) Run(ctx *Context) error {
	if c.Steps < 2 {
		return fmt.Errorf("--steps must be at least 2, got %d", c.Steps)
	}
	for _, name := range bivariate.PaletteNames() {
		spec, err := bivariate.Named(name)
		if err != nil {
			return err
		}
		grid, err := bivariate.BuildGrid(c.Steps, c.Steps, spec)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.stdout(), previewGrid(name, grid))
	}
	fmt.Fprintln(ctx.stdout(), "ramps: "+strings.Join(bivariate.RampNames(), ", "))
	return nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
