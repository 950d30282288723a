package detect

import (
	"fmt"
	"math"

	"seqsense/adapters/pattern/metrics"
	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// plainProgression reports whether the sequence already has a constant
// first difference or a constant ratio. The alternating detectors run
// before the arithmetic and geometric ones but must not capture their
// families, so they refuse plain progressions up front.
func plainProgression(seq sequence.Sequence, tol core.Tolerance) bool {
	if _, ok := metrics.ConstantDifference(seq, tol); ok {
		return true
	}
	_, ok := metrics.ConstantRatio(seq, tol)
	return ok
}

// hopOp is a constant operation applied on every second hop: add a
// fixed operand, multiply by it, or raise to a small integer power.
type hopOp struct {
	kind    opKind
	operand float64
}

type opKind int

const (
	opAdd opKind = iota
	opMul
	opPow
)

func (op hopOp) apply(v float64) float64 {
	switch op.kind {
	case opAdd:
		return v + op.operand
	case opMul:
		return v * op.operand
	default:
		return math.Pow(v, op.operand)
	}
}

func (op hopOp) describe() string {
	switch op.kind {
	case opAdd:
		return "x" + format.Signed(op.operand)
	case opMul:
		return "x·" + format.Number(op.operand)
	default:
		return "x^" + format.Number(op.operand)
	}
}

// findHopOp finds one operation shared by every (from, to) pair, trying
// addition, then multiplication, then integer powers 2..6.
func findHopOp(pairs [][2]float64, tol core.Tolerance) (hopOp, bool) {
	if len(pairs) == 0 {
		return hopOp{}, false
	}
	add := pairs[0][1] - pairs[0][0]
	if allPairs(pairs, tol, func(a, b float64) bool { return tol.WithinOf(b, a+add) }) {
		return hopOp{kind: opAdd, operand: add}, true
	}
	if pairs[0][0] != 0 {
		mul := pairs[0][1] / pairs[0][0]
		if !math.IsNaN(mul) && !math.IsInf(mul, 0) &&
			allPairs(pairs, tol, func(a, b float64) bool { return a != 0 && tol.WithinOf(b, a*mul) }) {
			return hopOp{kind: opMul, operand: mul}, true
		}
	}
	for p := 2; p <= 6; p++ {
		exp := float64(p)
		if allPairs(pairs, tol, func(a, b float64) bool {
			return a > 0 && tol.WithinOf(b, math.Pow(a, exp))
		}) {
			return hopOp{kind: opPow, operand: exp}, true
		}
	}
	return hopOp{}, false
}

func allPairs(pairs [][2]float64, tol core.Tolerance, pred func(a, b float64) bool) bool {
	for _, p := range pairs {
		if !pred(p[0], p[1]) {
			return false
		}
	}
	return true
}

// ComplexAlternating matches sequences built from two operations taken
// in turn: one constant operation on even-numbered hops, another on
// odd-numbered hops.
type ComplexAlternating struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *ComplexAlternating) Name() string { return "complex_alternating" }

// Detect needs at least five terms so each hop class is confirmed by
// two or more pairs, and refuses plain progressions and the degenerate
// case where both classes share one operation.
func (d *ComplexAlternating) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < 5 || plainProgression(seq, d.tol) {
		return Match{}, false
	}
	var even, odd [][2]float64
	for i := 0; i+1 < seq.Len(); i++ {
		pair := [2]float64{seq[i], seq[i+1]}
		if i%2 == 0 {
			even = append(even, pair)
		} else {
			odd = append(odd, pair)
		}
	}
	evenOp, ok := findHopOp(even, d.tol)
	if !ok {
		return Match{}, false
	}
	oddOp, ok := findHopOp(odd, d.tol)
	if !ok {
		return Match{}, false
	}
	// Two plain additions are an alternating-difference shape, owned by
	// the difference-cycle and interleave families below; and a single
	// operation repeated on both hop classes is no alternation at all.
	if evenOp.kind == opAdd && oddOp.kind == opAdd {
		return Match{}, false
	}
	if evenOp == oddOp {
		return Match{}, false
	}
	ops := [2]hopOp{evenOp, oddOp}
	v := seq.Last()
	next := make([]float64, 0, 3)
	for hop := seq.Len() - 1; hop < seq.Len()+2; hop++ {
		v = ops[hop%2].apply(v)
		next = append(next, v)
	}
	return Match{
		RuleType:   sequence.RuleAlternating,
		Confidence: 0.95,
		Description: fmt.Sprintf("Alternating operations: %s then %s, repeated",
			evenOp.describe(), oddOp.describe()),
		Formula: fmt.Sprintf("a(n+1) = %s / %s alternating",
			evenOp.describe(), oddOp.describe()),
		Next: next,
	}, true
}

// DifferenceCycle matches sequences whose successive differences repeat
// exactly with a short period.
type DifferenceCycle struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *DifferenceCycle) Name() string { return "difference_cycle" }

// Detect tries periods 2 through 4. The difference block must contain
// two or more distinct values (a uniform block is plain arithmetic) and
// must not sum to zero: a zero-drift block means the values themselves
// repeat, which belongs to the cyclic family.
func (d *DifferenceCycle) Detect(seq sequence.Sequence) (Match, bool) {
	diffs := metrics.Differences(seq)
	for period := 2; period <= 4; period++ {
		if len(diffs) < period+1 {
			break
		}
		// Period-2 cycles on six or more terms are constant-gap
		// interleaves; those belong to the higher-confidence
		// parity-split families that follow.
		if period == 2 && seq.Len() >= interleaveMinLen {
			continue
		}
		if !d.cycleHolds(diffs, period) {
			continue
		}
		block := diffs[:period]
		if metrics.AllApproximatelyEqual(block, d.tol) || d.tol.WithinOf(sum(block), 0) {
			continue
		}
		v := seq.Last()
		next := make([]float64, 0, 3)
		for i := len(diffs); i < len(diffs)+3; i++ {
			v += block[i%period]
			next = append(next, v)
		}
		return Match{
			RuleType:   sequence.RuleAlternating,
			Confidence: 0.94,
			Description: fmt.Sprintf("Differences repeat in a cycle of %d: [%s]",
				period, signedList(block)),
			Formula: fmt.Sprintf("a(n+1) = a(n) + d[(n-1) mod %d]", period),
			Next:    next,
		}, true
	}
	return Match{}, false
}

func (d *DifferenceCycle) cycleHolds(diffs []float64, period int) bool {
	for i := period; i < len(diffs); i++ {
		if !d.tol.WithinOf(diffs[i], diffs[i%period]) {
			return false
		}
	}
	return true
}

// TwoValueAlternating matches differences that alternate strictly
// between two distinct constants.
type TwoValueAlternating struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *TwoValueAlternating) Name() string { return "two_value_alternating" }

// Detect needs at least three differences to witness an alternation.
func (d *TwoValueAlternating) Detect(seq sequence.Sequence) (Match, bool) {
	diffs := metrics.Differences(seq)
	if len(diffs) < 3 {
		return Match{}, false
	}
	d1, d2 := diffs[0], diffs[1]
	if d.tol.WithinOf(d1, d2) {
		return Match{}, false
	}
	for i, v := range diffs {
		want := d1
		if i%2 == 1 {
			want = d2
		}
		if !d.tol.WithinOf(v, want) {
			return Match{}, false
		}
	}
	steps := [2]float64{d1, d2}
	v := seq.Last()
	next := make([]float64, 0, 3)
	for i := len(diffs); i < len(diffs)+3; i++ {
		v += steps[i%2]
		next = append(next, v)
	}
	return Match{
		RuleType:   sequence.RuleAlternating,
		Confidence: 0.92,
		Description: fmt.Sprintf("Differences alternate between %s and %s",
			format.Signed(d1), format.Signed(d2)),
		Formula: fmt.Sprintf("a(n+1) = a(n) %s / %s alternating",
			format.Signed(d1), format.Signed(d2)),
		Next: next,
	}, true
}

func sum(vs []float64) float64 {
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total
}

func signedList(vs []float64) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += ", "
		}
		s += format.Signed(v)
	}
	return s
}
