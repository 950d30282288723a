package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinOf(t *testing.T) {
	tol := DefaultTolerance

	assert.True(t, tol.WithinOf(1.0, 1.0))
	assert.True(t, tol.WithinOf(1.0, 1.00005))
	assert.True(t, tol.WithinOf(-2.0, -2.0001))
	assert.False(t, tol.WithinOf(1.0, 1.001))
	assert.False(t, tol.WithinOf(1.0, 2.0))
}

func TestNearInteger(t *testing.T) {
	tol := DefaultTolerance

	n, ok := tol.NearInteger(5.00005)
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	n, ok = tol.NearInteger(-3.0)
	assert.True(t, ok)
	assert.Equal(t, int64(-3), n)

	_, ok = tol.NearInteger(5.5)
	assert.False(t, ok)

	_, ok = tol.NearInteger(4.99)
	assert.False(t, ok)
}

func TestTolerance_Float(t *testing.T) {
	assert.Equal(t, 1e-4, DefaultTolerance.Float())
}
