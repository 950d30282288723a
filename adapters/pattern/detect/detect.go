// Package detect implements the pattern catalog: an ordered table of
// independent detectors, each a pure predicate over a sequence that
// tests membership in one parametric family and, on a match, computes
// the next three values from that family's generating rule.
//
// Detectors are evaluated strictly in catalog order and the first match
// wins; no fit-quality comparison happens across families. Confidence
// is a fixed constant per detector, never a fitted statistic.
package detect

import (
	"seqsense/domain/core"
	"seqsense/domain/sequence"
)

// Match is the outcome of a successful detection: the family tag, its
// fixed confidence, the display strings and the three successors
// computed from the family's rule.
type Match struct {
	RuleType    sequence.RuleType
	Confidence  float64
	Description string
	Formula     string
	Next        []float64
}

// Detector tests whether a sequence belongs to one parametric family.
// Detect returns false when the sequence is not a member; it must be a
// pure function of its input.
type Detector interface {
	Name() string
	Detect(seq sequence.Sequence) (Match, bool)
}

// Catalog is the ordered detector table. Order is the sole tie-break:
// families earlier in the table shadow later ones on any overlap.
type Catalog struct {
	detectors []Detector
}

// NewCatalog builds the catalog in priority order with the comparison
// tolerance threaded into every detector.
func NewCatalog(tol core.Tolerance) *Catalog {
	return &Catalog{detectors: []Detector{
		&ComplexAlternating{tol: tol},
		&DifferenceCycle{tol: tol},
		&UnitStepInterleave{tol: tol},
		&AlternatingStep{tol: tol},
		&Arithmetic{tol: tol},
		&Geometric{tol: tol},
		&Fibonacci{tol: tol},
		&Square{tol: tol},
		&Cube{tol: tol},
		&TwoValueAlternating{tol: tol},
		&InterleavedShapes{tol: tol},
		&AlternatingPair{tol: tol},
		&PowerOfBase{tol: tol},
		&CyclicBlock{tol: tol},
		&OrderedDifferences{tol: tol},
		&OrderedRatios{tol: tol},
		&DelayConstant{tol: tol},
		&InterleavedArithmetic{tol: tol},
		&HybridInterleave{tol: tol},
		&ParityGroups{tol: tol},
		&Fallback{},
	}}
}

// Detectors returns the catalog entries in evaluation order.
func (c *Catalog) Detectors() []Detector {
	return c.detectors
}

// Evaluate runs the detectors in order and returns the first match.
// The trailing fallback entry matches every sequence of three or more
// terms, so ok is false only for shorter inputs.
func (c *Catalog) Evaluate(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < sequence.MinLength {
		return Match{}, false
	}
	for _, d := range c.detectors {
		if m, ok := d.Detect(seq); ok {
			return m, true
		}
	}
	return Match{}, false
}
