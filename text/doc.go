// Package text measures, wraps and draws legend labels.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific pixel size
//
// Advances come from HarfBuzz shaping via go-text/typesetting, with text
// split into directional runs by the Unicode bidi algorithm. Glyphs are
// rasterised with golang.org/x/image/font/opentype. The embedded Go Regular
// font is used unless a FontSource is supplied.
//
// # Example usage
//
//	face, err := text.DefaultFace(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lines := face.Wrap("Median household income", 120, text.WrapWordChar)
//	img, err := face.Rasterize(lines, color.Black)
package text
