package bivariate

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber formats v with thousands separators and the given number of
// decimals. Trailing ".0", ".00", ... is dropped, so 1500 formats as
// "1,500" and 12.5 as "12.5".
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	s := numberPrinter.Sprintf("%.*f", decimals, v)
	if decimals > 0 {
		if i := strings.LastIndexByte(s, '.'); i >= 0 && strings.Trim(s[i+1:], "0") == "" {
			s = s[:i]
		}
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// IntervalLabels formats class intervals for a legend axis: the first class
// is closed "[min, b0]" and the rest half-open "(b(i-1), bi]", each bound
// with one decimal. bounds are the upper class bounds in ascending order.
func IntervalLabels(min float64, bounds []float64) []string {
	labels := make([]string, len(bounds))
	lo := min
	for i, hi := range bounds {
		open := "("
		if i == 0 {
			open = "["
		}
		labels[i] = open + FormatNumber(lo, 1) + ", " + FormatNumber(hi, 1) + "]"
		lo = hi
	}
	return labels
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
