package detect

import (
	"fmt"
	"math"

	"seqsense/domain/core"
	"seqsense/domain/sequence"
)

// Square matches sequences whose terms are all perfect squares.
type Square struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *Square) Name() string { return "square" }

// Detect requires every term's square root to round to an integer
// within the tolerance. Successors continue the roots by their most
// recent step (1 for consecutive squares).
func (d *Square) Detect(seq sequence.Sequence) (Match, bool) {
	roots := make([]float64, 0, seq.Len())
	for _, v := range seq {
		if v < 0 {
			return Match{}, false
		}
		r, ok := d.tol.NearInteger(math.Sqrt(v))
		if !ok {
			return Match{}, false
		}
		roots = append(roots, float64(r))
	}
	step := rootStep(roots)
	r := roots[len(roots)-1]
	next := make([]float64, 0, 3)
	for i := 1; i <= 3; i++ {
		v := r + float64(i)*step
		next = append(next, v*v)
	}
	return Match{
		RuleType:    sequence.RuleSquare,
		Confidence:  0.92,
		Description: fmt.Sprintf("Perfect squares: roots are %s", rootList(roots)),
		Formula:     "a(n) = r(n)²",
		Next:        next,
	}, true
}

// Cube matches sequences whose terms are all perfect cubes.
type Cube struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *Cube) Name() string { return "cube" }

// Detect requires every term's cube root to round to an integer within
// the tolerance. Negative terms are allowed.
func (d *Cube) Detect(seq sequence.Sequence) (Match, bool) {
	roots := make([]float64, 0, seq.Len())
	for _, v := range seq {
		r, ok := d.tol.NearInteger(math.Cbrt(v))
		if !ok {
			return Match{}, false
		}
		roots = append(roots, float64(r))
	}
	step := rootStep(roots)
	r := roots[len(roots)-1]
	next := make([]float64, 0, 3)
	for i := 1; i <= 3; i++ {
		v := r + float64(i)*step
		next = append(next, v*v*v)
	}
	return Match{
		RuleType:    sequence.RuleCube,
		Confidence:  0.91,
		Description: fmt.Sprintf("Perfect cubes: roots are %s", rootList(roots)),
		Formula:     "a(n) = r(n)³",
		Next:        next,
	}, true
}

// rootStep is the most recent root-to-root step, defaulting to 1 when
// the last two roots coincide.
func rootStep(roots []float64) float64 {
	if len(roots) < 2 {
		return 1
	}
	step := roots[len(roots)-1] - roots[len(roots)-2]
	if step == 0 {
		return 1
	}
	return step
}

func rootList(roots []float64) string {
	s := ""
	for i, r := range roots {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.0f", r)
	}
	return s
}
