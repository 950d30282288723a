package detect

import (
	"fmt"

	"seqsense/adapters/pattern/metrics"
	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// Arithmetic matches a constant first difference.
type Arithmetic struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *Arithmetic) Name() string { return "arithmetic" }

// Detect matches sequences with a constant first difference and
// extends them by that difference.
func (d *Arithmetic) Detect(seq sequence.Sequence) (Match, bool) {
	diff, ok := metrics.ConstantDifference(seq, d.tol)
	if !ok {
		return Match{}, false
	}
	last := seq.Last()
	return Match{
		RuleType:   sequence.RuleArithmetic,
		Confidence: 0.95,
		Description: fmt.Sprintf("Arithmetic sequence with common difference %s",
			format.Number(diff)),
		Formula: fmt.Sprintf("a(n) = %s + (n-1)·%s",
			format.Number(seq[0]), format.Number(diff)),
		Next: []float64{last + diff, last + 2*diff, last + 3*diff},
	}, true
}

// OrderedDifferences matches sequences whose first, second or third
// order differences are constant, and extends the difference table.
type OrderedDifferences struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *OrderedDifferences) Name() string { return "ordered_differences" }

var orderConfidence = [...]float64{0, 0.90, 0.87, 0.85}

// Detect tries difference orders 1 through 3 in turn. Order k needs at
// least k+2 terms so constancy is checked against two or more values.
func (d *OrderedDifferences) Detect(seq sequence.Sequence) (Match, bool) {
	levels := [][]float64{seq}
	for order := 1; order <= 3; order++ {
		prev := levels[order-1]
		if len(prev) < 3 {
			return Match{}, false
		}
		diffs := metrics.Differences(prev)
		levels = append(levels, diffs)
		if !metrics.AllApproximatelyEqual(diffs, d.tol) {
			continue
		}
		c := diffs[0]
		return Match{
			RuleType:   sequence.RuleDifference,
			Confidence: orderConfidence[order],
			Description: fmt.Sprintf("Order-%d differences are constant at %s",
				order, format.Number(c)),
			Formula: fmt.Sprintf("Δ^%d a(n) = %s", order, format.Number(c)),
			Next:    extendDifferenceTable(levels, c),
		}, true
	}
	return Match{}, false
}

// extendDifferenceTable continues the sequence three steps by running
// the constant top level back down through each difference level.
func extendDifferenceTable(levels [][]float64, constant float64) []float64 {
	lasts := make([]float64, len(levels))
	for i, level := range levels {
		lasts[i] = level[len(level)-1]
	}
	next := make([]float64, 0, 3)
	for step := 0; step < 3; step++ {
		lasts[len(lasts)-1] = constant
		for i := len(lasts) - 2; i >= 0; i-- {
			lasts[i] += lasts[i+1]
		}
		next = append(next, lasts[0])
	}
	return next
}

// DelayConstant matches sequences where every term equals the term two
// positions back plus a fixed constant.
type DelayConstant struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *DelayConstant) Name() string { return "delay_constant" }

// Detect requires at least four terms so the constant is confirmed by
// two or more equations rather than fixed by a single one.
func (d *DelayConstant) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < 4 {
		return Match{}, false
	}
	c := seq[2] - seq[0]
	for i := 3; i < seq.Len(); i++ {
		if !d.tol.WithinOf(seq[i]-seq[i-2], c) {
			return Match{}, false
		}
	}
	n := seq.Len()
	n1 := seq[n-2] + c
	n2 := seq[n-1] + c
	return Match{
		RuleType:   sequence.RuleDifference,
		Confidence: 0.90,
		Description: fmt.Sprintf("Each term equals the term two positions back plus %s",
			format.Number(c)),
		Formula: fmt.Sprintf("a(n) = a(n-2) + %s", format.Number(c)),
		Next:    []float64{n1, n2, n1 + c},
	}, true
}
