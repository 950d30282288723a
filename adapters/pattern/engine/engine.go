// Package engine orchestrates the pattern catalog: it evaluates the
// detectors in priority order, takes the first match and assembles the
// prediction result.
package engine

import (
	"seqsense/adapters/pattern/detect"
	"seqsense/domain/core"
	"seqsense/domain/sequence"
)

// Engine classifies sequences against the catalog. It is stateless and
// safe for concurrent use; Predict is a pure function of its input.
type Engine struct {
	catalog *detect.Catalog
}

// New builds an engine with the default comparison tolerance.
func New() *Engine {
	return NewWithTolerance(core.DefaultTolerance)
}

// NewWithTolerance builds an engine with an explicit tolerance.
func NewWithTolerance(tol core.Tolerance) *Engine {
	return &Engine{catalog: detect.NewCatalog(tol)}
}

// Catalog exposes the underlying detector table for listings.
func (e *Engine) Catalog() *detect.Catalog {
	return e.catalog
}

// DetectorNames lists the catalog entries in evaluation order.
func (e *Engine) DetectorNames() []string {
	detectors := e.catalog.Detectors()
	names := make([]string, len(detectors))
	for i, d := range detectors {
		names[i] = d.Name()
	}
	return names
}

// Predict classifies seq and extrapolates its next three values. It is
// total: it never fails, and inputs shorter than sequence.MinLength
// yield the defined degenerate result. The trailing fallback detector
// guarantees a match for everything else.
func (e *Engine) Predict(seq sequence.Sequence) sequence.PredictionResult {
	m, ok := e.catalog.Evaluate(seq)
	if !ok {
		return sequence.PredictionResult{
			NextElements:    []float64{},
			RuleType:        sequence.RuleUnknown,
			RuleDescription: "insufficient input",
			Formula:         "N/A",
			Confidence:      0,
		}
	}
	return sequence.PredictionResult{
		NextElements:    m.Next,
		RuleType:        m.RuleType,
		RuleDescription: m.Description,
		Formula:         m.Formula,
		Confidence:      m.Confidence,
	}
}
