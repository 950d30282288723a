package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-3, "-3"},
		{0, "0"},
		{2.5, "2.5"},
		{2.125, "2.125"},
		{2.1256, "2.126"}, // rounded to three places
		{3.000, "3"},
		{-0.5, "-0.5"},
		{1000000, "1000000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Number(c.in), "Number(%v)", c.in)
	}
}

func TestNumber_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN", Number(math.NaN()))
	assert.Equal(t, "∞", Number(math.Inf(1)))
	assert.Equal(t, "-∞", Number(math.Inf(-1)))
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "1, 2.5, 3", Numbers([]float64{1, 2.5, 3}, ", "))
	assert.Equal(t, "", Numbers(nil, ", "))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+2", Signed(2))
	assert.Equal(t, "-2", Signed(-2))
	assert.Equal(t, "+0", Signed(0))
	assert.Equal(t, "+1.5", Signed(1.5))
}
