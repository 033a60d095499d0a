package text

import "strings"

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first,
	// then falls back to character boundaries for long words.
	// This is the default and most common mode.
	WrapWordChar WrapMode = iota

	// WrapNone disables text wrapping; text may exceed the maximum width.
	WrapNone

	// WrapWord breaks at word boundaries only.
	// Long words that exceed the maximum width will overflow.
	WrapWord

	// WrapChar breaks at character boundaries.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// Wrap breaks s into lines whose advance does not exceed maxWidth pixels.
// Explicit newlines always break. Runs of spaces between words collapse to
// one space. A maxWidth of zero or less disables wrapping.
func (f *Face) Wrap(s string, maxWidth float64, mode WrapMode) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, f.wrapParagraph(para, maxWidth, mode)...)
	}
	return lines
}

func (f *Face) wrapParagraph(p string, maxWidth float64, mode WrapMode) []string {
	if mode == WrapNone || maxWidth <= 0 || f.Advance(p) <= maxWidth {
		return []string{p}
	}
	if mode == WrapChar {
		return f.breakChars(p, maxWidth)
	}

	var lines []string
	line := ""
	for _, word := range strings.Fields(p) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if f.Advance(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
		if mode == WrapWordChar && f.Advance(word) > maxWidth {
			parts := f.breakChars(word, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			line = parts[len(parts)-1]
		}
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

// breakChars splits s between runes. Every line holds at least one rune,
// so a single glyph wider than maxWidth still makes progress.
func (f *Face) breakChars(s string, maxWidth float64) []string {
	runes := []rune(s)
	var lines []string
	start := 0
	for i := start + 2; i <= len(runes); i++ {
		if f.Advance(string(runes[start:i])) > maxWidth {
			lines = append(lines, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return append(lines, string(runes[start:]))
}
