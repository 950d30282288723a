package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsense/domain/sequence"
	"seqsense/internal/testkit"
)

func TestPredict_TooShort(t *testing.T) {
	eng := New()
	res := eng.Predict(sequence.Sequence{5, 7})

	assert.Equal(t, sequence.RuleUnknown, res.RuleType)
	assert.Equal(t, "insufficient input", res.RuleDescription)
	assert.Equal(t, "N/A", res.Formula)
	assert.Zero(t, res.Confidence)
	require.NotNil(t, res.NextElements)
	assert.Empty(t, res.NextElements)
}

func TestPredict_IsDeterministic(t *testing.T) {
	eng := New()
	gen := testkit.NewGenerator(11)

	for i := 0; i < 50; i++ {
		seq := gen.Noise(8)
		first := eng.Predict(seq)
		second := eng.Predict(seq)
		assert.Equal(t, first, second)
	}
}

// TestPredict_ResultShape checks the structural guarantees that hold
// for every valid input regardless of the family matched: exactly
// three finite successors, a bounded confidence and non-empty display
// strings.
func TestPredict_ResultShape(t *testing.T) {
	eng := New()
	gen := testkit.NewGenerator(7)

	inputs := []sequence.Sequence{
		gen.Arithmetic(3, 4, 5),
		gen.Geometric(2, 3, 4),
		gen.Geometric(1, -1, 5),
		gen.Fibonacci(1, 1, 6),
		gen.Squares(1, 5),
		gen.Cycle([]float64{3, 1, 4}, 6),
		gen.Interleaved(1, 1, 4, 1, 6),
		gen.Noise(10),
		gen.Noise(3),
		gen.RandomArithmetic(12),
	}
	for _, seq := range inputs {
		res := eng.Predict(seq)
		require.Len(t, res.NextElements, 3, "input %v", seq)
		for _, v := range res.NextElements {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "input %v", seq)
		}
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 1.0)
		assert.NotEmpty(t, res.RuleDescription)
		assert.NotEmpty(t, res.Formula)
	}
}

func TestPredict_RandomArithmeticAlwaysClassified(t *testing.T) {
	eng := New()
	gen := testkit.NewGenerator(3)

	for i := 0; i < 100; i++ {
		seq := gen.RandomArithmetic(3 + i%18)
		res := eng.Predict(seq)
		require.Equal(t, sequence.RuleArithmetic, res.RuleType, "input %v", seq)
		assert.InDelta(t, 0.95, res.Confidence, 1e-9)
		diff := seq[1] - seq[0]
		assert.InDelta(t, seq.Last()+diff, res.NextElements[0], 1e-6)
	}
}

func TestDetectorNames(t *testing.T) {
	names := New().DetectorNames()
	require.Len(t, names, 21)
	assert.Equal(t, "complex_alternating", names[0])
	assert.Equal(t, "fallback", names[len(names)-1])
}

func TestPredict_NoiseFallsBack(t *testing.T) {
	eng := New()
	res := eng.Predict(sequence.Sequence{2, 3, 5, 7, 11})

	assert.Equal(t, sequence.RuleUnknown, res.RuleType)
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
	assert.Equal(t, []float64{15, 19, 23}, res.NextElements)
}
