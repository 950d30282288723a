package detect

import (
	"fmt"

	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// Fallback always matches: when no family explains the sequence it
// extends linearly from the most recent observed difference.
type Fallback struct{}

// Name returns the detector name.
func (d *Fallback) Name() string { return "fallback" }

// Detect never fails for sequences of two or more terms.
func (d *Fallback) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < 2 {
		return Match{}, false
	}
	n := seq.Len()
	diff := seq[n-1] - seq[n-2]
	last := seq.Last()
	return Match{
		RuleType:   sequence.RuleUnknown,
		Confidence: 0.5,
		Description: fmt.Sprintf("No recognized pattern; extending by the most recent difference %s",
			format.Signed(diff)),
		Formula: fmt.Sprintf("a(n+1) = a(n) %s", format.Signed(diff)),
		Next:    []float64{last + diff, last + 2*diff, last + 3*diff},
	}, true
}
