package core

import (
	"math"
)

// Tolerance is the absolute epsilon used for every numeric comparison in
// the pattern catalog. It is a single global value, not scaled to the
// magnitude of the sequence: very large or very small sequences may
// compare incorrectly, which is a known limitation of the rule set.
type Tolerance float64

// DefaultTolerance is the absolute comparison epsilon used throughout.
const DefaultTolerance Tolerance = 1e-4

// WithinOf reports whether a and b differ by at most the tolerance.
func (tol Tolerance) WithinOf(a, b float64) bool {
	return math.Abs(a-b) <= float64(tol)
}

// NearInteger reports whether v is within the tolerance of its nearest
// integer, returning that integer.
func (tol Tolerance) NearInteger(v float64) (int64, bool) {
	r := math.Round(v)
	if math.Abs(v-r) <= float64(tol) {
		return int64(r), true
	}
	return 0, false
}

// Float returns the tolerance as a plain float64.
func (tol Tolerance) Float() float64 {
	return float64(tol)
}
