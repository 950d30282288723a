package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seqsense/domain/sequence"
)

func TestCompute_Basic(t *testing.T) {
	b := NewComputer().Compute(sequence.Sequence{2, 4, 6, 8, 10})

	assert.Equal(t, 5, b.Count)
	assert.InDelta(t, 6, b.Mean, 1e-9)
	assert.InDelta(t, 6, b.Median, 1e-9)
	assert.InDelta(t, 2, b.Min, 1e-9)
	assert.InDelta(t, 10, b.Max, 1e-9)
	assert.InDelta(t, 8, b.Range, 1e-9)
	assert.InDelta(t, 2, b.TrendSlope, 1e-9)
	assert.Equal(t, "increasing", b.Monotonic)
	assert.False(t, b.HasZero)
	assert.True(t, b.AllInteger)
}

func TestCompute_Monotonicity(t *testing.T) {
	c := NewComputer()

	assert.Equal(t, "decreasing", c.Compute(sequence.Sequence{9, 6, 3, 0}).Monotonic)
	assert.Equal(t, "mixed", c.Compute(sequence.Sequence{1, 3, 2, 4}).Monotonic)
	assert.Equal(t, "constant", c.Compute(sequence.Sequence{5, 5, 5}).Monotonic)
	// Plateaus do not break monotonicity.
	assert.Equal(t, "increasing", c.Compute(sequence.Sequence{1, 1, 2, 3}).Monotonic)
}

func TestCompute_Flags(t *testing.T) {
	c := NewComputer()

	b := c.Compute(sequence.Sequence{9, 6, 3, 0})
	assert.True(t, b.HasZero)
	assert.True(t, b.AllInteger)

	b = c.Compute(sequence.Sequence{1.5, 2.5, 3.5})
	assert.False(t, b.HasZero)
	assert.False(t, b.AllInteger)
	assert.InDelta(t, 1, b.TrendSlope, 1e-9)
}

func TestCompute_Empty(t *testing.T) {
	assert.Equal(t, SequenceBrief{}, NewComputer().Compute(nil))
}
