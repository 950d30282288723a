// Package format renders numbers for display: integers without a
// decimal point, everything else to at most three decimal places with
// trailing zeros stripped.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Number formats v for embedding in descriptions, formulas and views.
func Number(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Numbers formats a slice of values separated by sep.
func Numbers(vs []float64, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Number(v)
	}
	return strings.Join(parts, sep)
}

// Signed formats v with an explicit leading sign, for difference lists.
func Signed(v float64) string {
	if v >= 0 {
		return "+" + Number(v)
	}
	return Number(v)
}
