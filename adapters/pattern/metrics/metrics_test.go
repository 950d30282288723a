package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"seqsense/domain/core"
)

const tol = core.DefaultTolerance

func TestDifferences(t *testing.T) {
	assert.Equal(t, []float64{3, 3, 3}, Differences([]float64{2, 5, 8, 11}))
	assert.Equal(t, []float64{-2, 3}, Differences([]float64{5, 3, 6}))
	assert.Nil(t, Differences([]float64{7}))
	assert.Nil(t, Differences(nil))
}

func TestRatios(t *testing.T) {
	rs := Ratios([]float64{2, 4, 12})
	assert.Len(t, rs, 2)
	assert.True(t, rs[0].Defined)
	assert.Equal(t, 2.0, rs[0].Value)
	assert.Equal(t, 3.0, rs[1].Value)
}

func TestRatios_ZeroDenominator(t *testing.T) {
	rs := Ratios([]float64{5, 0, 3})
	assert.True(t, rs[0].Defined)
	assert.False(t, rs[1].Defined, "division by zero must be representable, not fatal")

	_, ok := DefinedValues(rs)
	assert.False(t, ok)
}

func TestRatios_NonFiniteQuotient(t *testing.T) {
	huge := math.MaxFloat64
	rs := Ratios([]float64{huge, huge * 2})
	// Overflowing quotients count as undefined rather than leaking Inf.
	for _, r := range rs {
		if r.Defined {
			assert.False(t, math.IsInf(r.Value, 0))
			assert.False(t, math.IsNaN(r.Value))
		}
	}
}

func TestAllApproximatelyEqual(t *testing.T) {
	assert.True(t, AllApproximatelyEqual([]float64{1, 1.00005, 0.99996}, tol))
	assert.False(t, AllApproximatelyEqual([]float64{1, 1.001}, tol))
	assert.True(t, AllApproximatelyEqual([]float64{42}, tol), "vacuously true for one value")
	assert.True(t, AllApproximatelyEqual(nil, tol), "vacuously true for no values")
}

func TestConstantDifference(t *testing.T) {
	d, ok := ConstantDifference([]float64{1, 4, 7, 10}, tol)
	assert.True(t, ok)
	assert.Equal(t, 3.0, d)

	_, ok = ConstantDifference([]float64{1, 4, 8}, tol)
	assert.False(t, ok)

	_, ok = ConstantDifference([]float64{1, 4}, tol)
	assert.False(t, ok, "two terms cannot witness a constant difference")
}

func TestConstantRatio(t *testing.T) {
	r, ok := ConstantRatio([]float64{3, 6, 12, 24}, tol)
	assert.True(t, ok)
	assert.Equal(t, 2.0, r)

	_, ok = ConstantRatio([]float64{3, 0, 0}, tol)
	assert.False(t, ok, "zero denominators disqualify the ratio chain")

	r, ok = ConstantRatio([]float64{1, -1, 1, -1}, tol)
	assert.True(t, ok)
	assert.Equal(t, -1.0, r)
}
