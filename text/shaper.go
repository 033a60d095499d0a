package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaperPool holds idle shapers; a HarfbuzzShaper owns a scratch buffer
// and must not be shared between goroutines.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// parseShapingFont keeps only the immutable *Font of the parsed face.
func parseShapingFont(data []byte) (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

// shape runs HarfBuzz over one directional run of runes.
func (f *Face) shape(runes []rune, run Run) shaping.Output {
	// A font.Face carries glyph caches, so each call wraps the shared Font
	// in a fresh one.
	input := shaping.Input{
		Text:      runes,
		RunStart:  run.Start,
		RunEnd:    run.End,
		Direction: run.Direction.shaping(),
		Face:      font.NewFace(f.source.shape),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes[run.Start:run.End]),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out
}

// detectScript returns the script of the first non-space rune.
// Runs are split by direction only, so mixed-script runs of the same
// direction are shaped with the leading script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func (d Direction) shaping() di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
