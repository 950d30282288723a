package ports

import (
	"seqsense/domain/sequence"
)

// Predictor classifies a sequence against the pattern catalog and
// extrapolates its next three values. Implementations are total: they
// never return an error, and degrade to a defined result for inputs
// shorter than sequence.MinLength.
type Predictor interface {
	Predict(seq sequence.Sequence) sequence.PredictionResult
}
