package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsense/adapters/pattern/engine"
	"seqsense/domain/sequence"
)

func newTestService(historySize int) *PredictionService {
	return NewPredictionService(engine.New(), historySize)
}

func TestPredict_RecordAndBrief(t *testing.T) {
	svc := newTestService(10)
	p := svc.Predict(sequence.Sequence{3, 7, 11, 15})

	assert.NotEmpty(t, p.Record.ID)
	assert.Equal(t, sequence.Sequence{3, 7, 11, 15}, p.Record.Input)
	assert.Equal(t, sequence.RuleArithmetic, p.Record.Result.RuleType)
	assert.Equal(t, []float64{19, 23, 27}, p.Record.Result.NextElements)
	assert.False(t, p.Record.CreatedAt.IsZero())
	assert.Equal(t, 4, p.Brief.Count)
	assert.Equal(t, "increasing", p.Brief.Monotonic)
}

func TestPredict_InputIsCopied(t *testing.T) {
	svc := newTestService(10)
	input := sequence.Sequence{1, 2, 3}
	p := svc.Predict(input)

	input[0] = 99
	assert.Equal(t, sequence.Sequence{1, 2, 3}, p.Record.Input)
}

func TestHistory_MostRecentFirstAndBounded(t *testing.T) {
	svc := newTestService(3)
	for i := 0; i < 5; i++ {
		base := float64(i * 10)
		svc.Predict(sequence.Sequence{base, base + 1, base + 2})
	}

	records := svc.History()
	require.Len(t, records, 3)
	assert.Equal(t, sequence.Sequence{40, 41, 42}, records[0].Input)
	assert.Equal(t, sequence.Sequence{30, 31, 32}, records[1].Input)
	assert.Equal(t, sequence.Sequence{20, 21, 22}, records[2].Input)
}

func TestPredictBatch_PreservesOrder(t *testing.T) {
	svc := newTestService(100)
	seqs := make([]sequence.Sequence, 30)
	for i := range seqs {
		start := float64(i)
		seqs[i] = sequence.Sequence{start, start + 2, start + 4, start + 6}
	}

	out, err := svc.PredictBatch(context.Background(), seqs)
	require.NoError(t, err)
	require.Len(t, out, len(seqs))
	for i, p := range out {
		assert.Equal(t, seqs[i], p.Record.Input, fmt.Sprintf("position %d", i))
		assert.Equal(t, sequence.RuleArithmetic, p.Record.Result.RuleType)
	}
}

func TestPredictBatch_CancelledContext(t *testing.T) {
	svc := newTestService(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PredictBatch(ctx, []sequence.Sequence{{1, 2, 3}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPredictBatch_Empty(t *testing.T) {
	svc := newTestService(10)
	out, err := svc.PredictBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
