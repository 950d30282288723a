// Package testkit provides deterministic sequence fixtures for tests
// and demos.
package testkit

import (
	"math"
	"math/rand"

	"seqsense/domain/sequence"
)

// Generator produces sequences of known families from a fixed seed, so
// tests get variety without flakiness.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Arithmetic returns start, start+diff, ... with n terms.
func (g *Generator) Arithmetic(start, diff float64, n int) sequence.Sequence {
	seq := make(sequence.Sequence, n)
	for i := range seq {
		seq[i] = start + float64(i)*diff
	}
	return seq
}

// Geometric returns start, start·ratio, ... with n terms.
func (g *Generator) Geometric(start, ratio float64, n int) sequence.Sequence {
	seq := make(sequence.Sequence, n)
	v := start
	for i := range seq {
		seq[i] = v
		v *= ratio
	}
	return seq
}

// Fibonacci returns a Fibonacci-like sequence from the two seeds.
func (g *Generator) Fibonacci(a, b float64, n int) sequence.Sequence {
	seq := make(sequence.Sequence, 0, n)
	for len(seq) < n {
		seq = append(seq, a)
		a, b = b, a+b
	}
	return seq
}

// Squares returns k², (k+1)², ... with n terms.
func (g *Generator) Squares(k, n int) sequence.Sequence {
	seq := make(sequence.Sequence, n)
	for i := range seq {
		r := float64(k + i)
		seq[i] = r * r
	}
	return seq
}

// Cycle repeats block until the sequence holds n terms.
func (g *Generator) Cycle(block []float64, n int) sequence.Sequence {
	seq := make(sequence.Sequence, n)
	for i := range seq {
		seq[i] = block[i%len(block)]
	}
	return seq
}

// Interleaved merges two arithmetic runs by alternating positions.
func (g *Generator) Interleaved(evenStart, evenDiff, oddStart, oddDiff float64, n int) sequence.Sequence {
	seq := make(sequence.Sequence, n)
	for i := range seq {
		k := float64(i / 2)
		if i%2 == 0 {
			seq[i] = evenStart + k*evenDiff
		} else {
			seq[i] = oddStart + k*oddDiff
		}
	}
	return seq
}

// Noise returns n random values rounded to one decimal, very unlikely
// to match any family beyond the fallback.
func (g *Generator) Noise(n int) sequence.Sequence {
	seq := make(sequence.Sequence, n)
	for i := range seq {
		seq[i] = math.Round(g.rng.Float64()*1000) / 10
	}
	return seq
}

// RandomArithmetic returns an arithmetic sequence with random integer
// start and non-zero difference.
func (g *Generator) RandomArithmetic(n int) sequence.Sequence {
	start := float64(g.rng.Intn(41) - 20)
	diff := float64(g.rng.Intn(19)-9) + 0.5 // never zero
	return g.Arithmetic(start, diff, n)
}
