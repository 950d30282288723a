// Package metrics holds the numeric primitives shared by every pattern
// detector: successive differences, successive ratios and the
// approximate-equality predicate. All comparisons use one absolute
// tolerance carried as a core.Tolerance value.
package metrics

import (
	"math"

	"seqsense/domain/core"
)

// Ratio is the quotient of two successive terms. Defined is false when
// the denominator is zero or the quotient is not finite; undefined
// ratios are representable rather than fatal, and consumers must check
// Defined before comparing values.
type Ratio struct {
	Value   float64
	Defined bool
}

// Differences returns seq[i] - seq[i-1] for i = 1..n-1.
func Differences(seq []float64) []float64 {
	if len(seq) < 2 {
		return nil
	}
	out := make([]float64, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out = append(out, seq[i]-seq[i-1])
	}
	return out
}

// Ratios returns seq[i] / seq[i-1] for i = 1..n-1. A zero denominator
// or non-finite quotient yields an undefined ratio in that position.
func Ratios(seq []float64) []Ratio {
	if len(seq) < 2 {
		return nil
	}
	out := make([]Ratio, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		out = append(out, divide(seq[i], seq[i-1]))
	}
	return out
}

func divide(num, den float64) Ratio {
	if den == 0 {
		return Ratio{}
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return Ratio{}
	}
	return Ratio{Value: q, Defined: true}
}

// DefinedValues extracts the values of rs when every ratio is defined.
// The bool is false as soon as one ratio is undefined.
func DefinedValues(rs []Ratio) ([]float64, bool) {
	out := make([]float64, 0, len(rs))
	for _, r := range rs {
		if !r.Defined {
			return nil, false
		}
		out = append(out, r.Value)
	}
	return out, true
}

// AllApproximatelyEqual reports whether every value lies within the
// tolerance of the first. Vacuously true for length <= 1.
func AllApproximatelyEqual(values []float64, tol core.Tolerance) bool {
	if len(values) <= 1 {
		return true
	}
	first := values[0]
	for _, v := range values[1:] {
		if !tol.WithinOf(v, first) {
			return false
		}
	}
	return true
}

// ConstantDifference reports whether the sequence has a constant first
// difference, returning it. Requires at least three terms.
func ConstantDifference(seq []float64, tol core.Tolerance) (float64, bool) {
	if len(seq) < 3 {
		return 0, false
	}
	diffs := Differences(seq)
	if !AllApproximatelyEqual(diffs, tol) {
		return 0, false
	}
	return diffs[0], true
}

// ConstantRatio reports whether the sequence has a constant, defined
// first ratio, returning it. Requires at least three terms.
func ConstantRatio(seq []float64, tol core.Tolerance) (float64, bool) {
	if len(seq) < 3 {
		return 0, false
	}
	values, ok := DefinedValues(Ratios(seq))
	if !ok || !AllApproximatelyEqual(values, tol) {
		return 0, false
	}
	return values[0], true
}
