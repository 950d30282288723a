package sequence

import (
	"math"

	"seqsense/domain/core"
)

// Input envelope enforced by the input collaborators. The engine itself
// only degrades for fewer than MinLength values; it does not re-check
// the upper bound or finiteness.
const (
	MinLength = 3
	MaxLength = 20
)

// Sequence is an ordered list of finite real numbers.
type Sequence []float64

// Len returns the number of terms.
func (s Sequence) Len() int {
	return len(s)
}

// Last returns the final term. Panics on an empty sequence; callers
// guard with Len first.
func (s Sequence) Last() float64 {
	return s[len(s)-1]
}

// SplitParity separates the sequence into its even-indexed and
// odd-indexed sub-sequences (0-based).
func (s Sequence) SplitParity() (even, odd Sequence) {
	for i, v := range s {
		if i%2 == 0 {
			even = append(even, v)
		} else {
			odd = append(odd, v)
		}
	}
	return even, odd
}

// AllFinite reports whether every term is a finite number.
func (s Sequence) AllFinite() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// RuleType tags the family that produced a prediction.
type RuleType string

const (
	RuleArithmetic  RuleType = "arithmetic"
	RuleGeometric   RuleType = "geometric"
	RuleFibonacci   RuleType = "fibonacci"
	RuleSquare      RuleType = "square"
	RuleCube        RuleType = "cube"
	RuleAlternating RuleType = "alternating"
	RulePower       RuleType = "power"
	RuleHybrid      RuleType = "hybrid"
	RuleDifference  RuleType = "difference_pattern"
	RuleRatio       RuleType = "ratio_pattern"
	RuleUnknown     RuleType = "unknown"

	// Reserved tags. No detector in the catalog produces them; they
	// exist so stored or displayed results can round-trip the full
	// historical tag set.
	RuleFactorial RuleType = "factorial"
	RulePrime     RuleType = "prime"
)

// String returns the wire representation of the rule type.
func (r RuleType) String() string {
	return string(r)
}

// PredictionResult is the single output entity of the engine.
// INVARIANTS:
// - len(NextElements) == 3 whenever the input had >= MinLength terms, else 0
// - Confidence in [0, 1], a fixed constant per matched rule
// - RuleType matches whichever detector produced the result
// A result is immutable once returned: it is a pure function of the
// input sequence and is owned by the caller.
type PredictionResult struct {
	NextElements    []float64 `json:"next_elements"`
	RuleType        RuleType  `json:"rule_type"`
	RuleDescription string    `json:"rule_description"`
	Formula         string    `json:"formula"`
	Confidence      float64   `json:"confidence"`
}

// PredictionRecord wraps a result with request-scoped identity for
// display and the in-memory history ring. Records are never persisted.
type PredictionRecord struct {
	ID        core.PredictionID `json:"id"`
	Input     Sequence          `json:"input"`
	Result    PredictionResult  `json:"result"`
	CreatedAt core.Timestamp    `json:"created_at"`
}
