package detect

import (
	"fmt"

	"seqsense/adapters/pattern/metrics"
	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// CyclicBlock matches sequences that repeat a fixed block of values.
type CyclicBlock struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *CyclicBlock) Name() string { return "cyclic_block" }

// Detect tries block lengths from 2 up to half the sequence, smallest
// first, allowing a partial trailing repetition. A uniform block is a
// constant sequence and is left to the arithmetic family.
func (d *CyclicBlock) Detect(seq sequence.Sequence) (Match, bool) {
	for period := 2; period <= seq.Len()/2; period++ {
		if !d.repeats(seq, period) {
			continue
		}
		block := []float64(seq[:period])
		if metrics.AllApproximatelyEqual(block, d.tol) {
			continue
		}
		next := make([]float64, 0, 3)
		for i := seq.Len(); i < seq.Len()+3; i++ {
			next = append(next, block[i%period])
		}
		return Match{
			RuleType:   sequence.RuleHybrid,
			Confidence: 0.90,
			Description: fmt.Sprintf("Repeating cycle of %d values: [%s]",
				period, format.Numbers(block, ", ")),
			Formula: fmt.Sprintf("a(n) = a(((n-1) mod %d) + 1)", period),
			Next:    next,
		}, true
	}
	return Match{}, false
}

func (d *CyclicBlock) repeats(seq sequence.Sequence, period int) bool {
	for i := period; i < seq.Len(); i++ {
		if !d.tol.WithinOf(seq[i], seq[i%period]) {
			return false
		}
	}
	return true
}
