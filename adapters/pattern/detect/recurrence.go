package detect

import (
	"fmt"

	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// Fibonacci matches sequences where every term from the third on is the
// sum of its two predecessors.
type Fibonacci struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *Fibonacci) Name() string { return "fibonacci" }

// Detect checks the additive recurrence over the whole sequence.
//
// The successors deliberately do not follow the pure recurrence: the
// third one adds the final observed term again (n3 = n2 + last) where
// the recurrence would add the first predicted term. This reproduces
// the rule's historical output and is pinned by tests; change it only
// together with them.
func (d *Fibonacci) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < sequence.MinLength {
		return Match{}, false
	}
	for i := 2; i < seq.Len(); i++ {
		if !d.tol.WithinOf(seq[i], seq[i-1]+seq[i-2]) {
			return Match{}, false
		}
	}
	last := seq.Last()
	prev := seq[seq.Len()-2]
	n1 := last + prev
	n2 := n1 + last
	n3 := n2 + last
	return Match{
		RuleType:   sequence.RuleFibonacci,
		Confidence: 0.90,
		Description: fmt.Sprintf("Fibonacci-like: each term is the sum of the two before it (next: %s)",
			format.Number(n1)),
		Formula: "a(n) = a(n-1) + a(n-2)",
		Next:    []float64{n1, n2, n3},
	}, true
}
