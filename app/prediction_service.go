package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/analysis/brief"
	"seqsense/ports"
)

// maxBatchWorkers bounds batch prediction parallelism.
const maxBatchWorkers = 8

// Prediction bundles everything the surfaces render for one request:
// the identified record plus the advisory brief.
type Prediction struct {
	Record sequence.PredictionRecord `json:"record"`
	Brief  brief.SequenceBrief       `json:"brief"`
}

// PredictionService wraps the engine with request identity, the
// advisory brief and a bounded in-memory history. History is the only
// state in the system and is never persisted.
type PredictionService struct {
	predictor ports.Predictor
	briefs    *brief.Computer

	mu          sync.RWMutex
	history     []sequence.PredictionRecord
	historySize int
}

// NewPredictionService creates a service over the given predictor.
func NewPredictionService(predictor ports.Predictor, historySize int) *PredictionService {
	if historySize <= 0 {
		historySize = 50
	}
	return &PredictionService{
		predictor:   predictor,
		briefs:      brief.NewComputer(),
		historySize: historySize,
	}
}

// Predictor exposes the wrapped predictor for catalog listings.
func (s *PredictionService) Predictor() ports.Predictor {
	return s.predictor
}

// Predict classifies seq, stamps the result into a record and appends
// it to the history ring.
func (s *PredictionService) Predict(seq sequence.Sequence) Prediction {
	result := s.predictor.Predict(seq)
	record := sequence.PredictionRecord{
		ID:        core.PredictionID(core.NewID()),
		Input:     seq.Clone(),
		Result:    result,
		CreatedAt: core.Now(),
	}
	s.remember(record)
	return Prediction{
		Record: record,
		Brief:  s.briefs.Compute(seq),
	}
}

// PredictBatch classifies the sequences concurrently, preserving input
// order. Individual predictions never fail; the error return exists
// only for context cancellation.
func (s *PredictionService) PredictBatch(ctx context.Context, seqs []sequence.Sequence) ([]Prediction, error) {
	out := make([]Prediction, len(seqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchWorkers)
	for i, seq := range seqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = s.Predict(seq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// History returns the retained records, most recent first.
func (s *PredictionService) History() []sequence.PredictionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]sequence.PredictionRecord, len(s.history))
	for i, r := range s.history {
		out[len(s.history)-1-i] = r
	}
	return out
}

func (s *PredictionService) remember(record sequence.PredictionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, record)
	if len(s.history) > s.historySize {
		s.history = s.history[len(s.history)-s.historySize:]
	}
}
