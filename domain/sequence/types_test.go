package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitParity(t *testing.T) {
	even, odd := Sequence{1, 4, 2, 5, 3}.SplitParity()
	assert.Equal(t, Sequence{1, 2, 3}, even)
	assert.Equal(t, Sequence{4, 5}, odd)

	even, odd = Sequence(nil).SplitParity()
	assert.Empty(t, even)
	assert.Empty(t, odd)
}

func TestAllFinite(t *testing.T) {
	assert.True(t, Sequence{1, -2.5, 0}.AllFinite())
	assert.False(t, Sequence{1, math.NaN()}.AllFinite())
	assert.False(t, Sequence{1, math.Inf(1)}.AllFinite())
	assert.True(t, Sequence{}.AllFinite())
}

func TestClone(t *testing.T) {
	orig := Sequence{1, 2, 3}
	cl := orig.Clone()
	cl[0] = 9
	assert.Equal(t, Sequence{1, 2, 3}, orig)
}

func TestLastAndLen(t *testing.T) {
	s := Sequence{2, 4, 6}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 6.0, s.Last())
}
