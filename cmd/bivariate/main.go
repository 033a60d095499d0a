// Command bivariate colours two-variable data and renders matching legends.
//
// Usage:
//
//	bivariate colorize data.csv --col-a income --col-b population
//	bivariate legend data.csv --col-a income --col-b population --out legend.png
//	bivariate palettes
package main

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/gogpu/bivariate"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bivariate"),
		kong.Description("Bivariate colour blending and legend rendering."),
		kong.UsageOnError(),
		kong.Vars{
			"default_palette":  bivariate.DefaultPalette,
			"default_quantile": strconv.FormatFloat(bivariate.DefaultOpacityQuantile, 'g', -1, 64),
		},
	)
	cli.configureLogging()
	err := ctx.Run(&Context{Verbose: cli.Verbose})
	ctx.FatalIfErrorf(err)
}
