package detect

import (
	"fmt"

	"seqsense/adapters/pattern/metrics"
	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// The parity-split detectors all decompose the sequence into its
// even-indexed and odd-indexed sub-sequences and classify each branch
// independently. They share one analysis; the catalog entries differ
// only in the constraints they put on the branch shapes and in their
// confidence and wording. Each needs at least six terms so both
// branches carry three or more values.
const interleaveMinLen = 6

type branchKind int

const (
	branchNone branchKind = iota
	branchArithmetic
	branchGeometric
)

// branchShape is the classified shape of one parity branch.
type branchShape struct {
	kind  branchKind
	diff  float64
	ratio float64
}

func (b branchShape) describe() string {
	switch b.kind {
	case branchArithmetic:
		return "arithmetic (" + format.Signed(b.diff) + ")"
	case branchGeometric:
		return "geometric (×" + format.Number(b.ratio) + ")"
	default:
		return "unclassified"
	}
}

// analyzeBranch classifies one parity branch, preferring arithmetic
// when a branch satisfies both shapes (a constant branch does).
func analyzeBranch(branch []float64, tol core.Tolerance) branchShape {
	if diff, ok := metrics.ConstantDifference(branch, tol); ok {
		return branchShape{kind: branchArithmetic, diff: diff}
	}
	if ratio, ok := metrics.ConstantRatio(branch, tol); ok {
		return branchShape{kind: branchGeometric, ratio: ratio}
	}
	return branchShape{kind: branchNone}
}

// advance extends one branch a single step per its shape.
func (b branchShape) advance(last float64) float64 {
	if b.kind == branchGeometric {
		return last * b.ratio
	}
	return last + b.diff
}

// continueInterleaved extends each branch independently and interleaves
// the results back in original parity order.
func continueInterleaved(seq sequence.Sequence, evenShape, oddShape branchShape) []float64 {
	even, odd := seq.SplitParity()
	next := make([]float64, 0, 3)
	for gi := seq.Len(); gi < seq.Len()+3; gi++ {
		if gi%2 == 0 {
			v := evenShape.advance(even[len(even)-1])
			even = append(even, v)
			next = append(next, v)
		} else {
			v := oddShape.advance(odd[len(odd)-1])
			odd = append(odd, v)
			next = append(next, v)
		}
	}
	return next
}

// constantGap returns the gap odd[i] - even[i] when it is constant over
// the paired positions.
func constantGap(even, odd []float64, tol core.Tolerance) (float64, bool) {
	n := len(odd)
	if len(even) < n {
		n = len(even)
	}
	if n == 0 {
		return 0, false
	}
	gap := odd[0] - even[0]
	for i := 1; i < n; i++ {
		if !tol.WithinOf(odd[i]-even[i], gap) {
			return 0, false
		}
	}
	return gap, true
}

// UnitStepInterleave matches two interleaved arithmetic runs that both
// step by exactly one and sit exactly three apart, e.g. 1,4,2,5,3,6.
// It is the general interleaved-arithmetic detection with fixed
// parameters and a higher confidence, not a separate code path.
type UnitStepInterleave struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *UnitStepInterleave) Name() string { return "unit_step_interleave" }

// Detect requires both branch differences to be exactly 1 and the
// inter-branch gap to be exactly 3.
func (d *UnitStepInterleave) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < interleaveMinLen {
		return Match{}, false
	}
	even, odd := seq.SplitParity()
	evenShape := analyzeBranch(even, d.tol)
	oddShape := analyzeBranch(odd, d.tol)
	if evenShape.kind != branchArithmetic || oddShape.kind != branchArithmetic {
		return Match{}, false
	}
	if !d.tol.WithinOf(evenShape.diff, 1) || !d.tol.WithinOf(oddShape.diff, 1) {
		return Match{}, false
	}
	gap, ok := constantGap(even, odd, d.tol)
	if !ok || !d.tol.WithinOf(gap, 3) {
		return Match{}, false
	}
	return Match{
		RuleType:    sequence.RuleAlternating,
		Confidence:  0.99,
		Description: "Two interleaved runs counting up by 1, offset by 3",
		Formula:     "a(n+2) = a(n) + 1",
		Next:        continueInterleaved(seq, evenShape, oddShape),
	}, true
}

// AlternatingStep matches two interleaved arithmetic runs whose paired
// terms stay a constant step apart.
type AlternatingStep struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *AlternatingStep) Name() string { return "alternating_step" }

// Detect refuses plain progressions: the parity split of any arithmetic
// or geometric sequence trivially satisfies this shape.
func (d *AlternatingStep) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < interleaveMinLen || plainProgression(seq, d.tol) {
		return Match{}, false
	}
	even, odd := seq.SplitParity()
	evenShape := analyzeBranch(even, d.tol)
	oddShape := analyzeBranch(odd, d.tol)
	if evenShape.kind != branchArithmetic || oddShape.kind != branchArithmetic {
		return Match{}, false
	}
	gap, ok := constantGap(even, odd, d.tol)
	if !ok {
		return Match{}, false
	}
	return Match{
		RuleType:   sequence.RuleAlternating,
		Confidence: 0.98,
		Description: fmt.Sprintf("Interleaved runs stepping by %s, paired terms %s apart",
			format.Signed(evenShape.diff), format.Signed(gap)),
		Formula: fmt.Sprintf("a(n+2) = a(n) %s", format.Signed(evenShape.diff)),
		Next:    continueInterleaved(seq, evenShape, oddShape),
	}, true
}

// InterleavedShapes matches any combination of arithmetic or geometric
// parity branches.
type InterleavedShapes struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *InterleavedShapes) Name() string { return "interleaved_shapes" }

// Detect classifies both branches and accepts any arithmetic/geometric
// combination.
func (d *InterleavedShapes) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < interleaveMinLen {
		return Match{}, false
	}
	even, odd := seq.SplitParity()
	evenShape := analyzeBranch(even, d.tol)
	oddShape := analyzeBranch(odd, d.tol)
	if evenShape.kind == branchNone || oddShape.kind == branchNone {
		return Match{}, false
	}
	return Match{
		RuleType:   sequence.RuleHybrid,
		Confidence: 0.90,
		Description: fmt.Sprintf("Interleaved sub-sequences: odd positions %s, even positions %s",
			evenShape.describe(), oddShape.describe()),
		Formula: "odd/even positions follow independent progressions",
		Next:    continueInterleaved(seq, evenShape, oddShape),
	}, true
}

// AlternatingPair matches two interleaved arithmetic runs with
// independent differences.
type AlternatingPair struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *AlternatingPair) Name() string { return "alternating_pair" }

// Detect accepts any pair of arithmetic branches.
func (d *AlternatingPair) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < interleaveMinLen {
		return Match{}, false
	}
	even, odd := seq.SplitParity()
	evenShape := analyzeBranch(even, d.tol)
	oddShape := analyzeBranch(odd, d.tol)
	if evenShape.kind != branchArithmetic || oddShape.kind != branchArithmetic {
		return Match{}, false
	}
	return Match{
		RuleType:   sequence.RuleAlternating,
		Confidence: 0.89,
		Description: fmt.Sprintf("Alternating runs stepping by %s and %s",
			format.Signed(evenShape.diff), format.Signed(oddShape.diff)),
		Formula: fmt.Sprintf("a(n+2) = a(n) %s or %s by position parity",
			format.Signed(evenShape.diff), format.Signed(oddShape.diff)),
		Next: continueInterleaved(seq, evenShape, oddShape),
	}, true
}

// InterleavedArithmetic matches two interleaved arithmetic runs that
// share one common difference.
type InterleavedArithmetic struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *InterleavedArithmetic) Name() string { return "interleaved_arithmetic" }

// Detect requires equal branch differences; the inter-branch gap is
// then constant by construction and reported as a parameter.
func (d *InterleavedArithmetic) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < interleaveMinLen {
		return Match{}, false
	}
	even, odd := seq.SplitParity()
	evenShape := analyzeBranch(even, d.tol)
	oddShape := analyzeBranch(odd, d.tol)
	if evenShape.kind != branchArithmetic || oddShape.kind != branchArithmetic {
		return Match{}, false
	}
	if !d.tol.WithinOf(evenShape.diff, oddShape.diff) {
		return Match{}, false
	}
	gap := odd[0] - even[0]
	return Match{
		RuleType:   sequence.RuleAlternating,
		Confidence: 0.95,
		Description: fmt.Sprintf("Interleaved runs with shared step %s, offset %s",
			format.Signed(evenShape.diff), format.Signed(gap)),
		Formula: fmt.Sprintf("a(n+2) = a(n) %s", format.Signed(evenShape.diff)),
		Next:    continueInterleaved(seq, evenShape, oddShape),
	}, true
}

// HybridInterleave matches an arithmetic run interleaved with a
// geometric one.
type HybridInterleave struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *HybridInterleave) Name() string { return "hybrid_interleave" }

// Detect requires the odd-position branch to be arithmetic and the
// even-position branch geometric.
func (d *HybridInterleave) Detect(seq sequence.Sequence) (Match, bool) {
	if seq.Len() < interleaveMinLen {
		return Match{}, false
	}
	even, odd := seq.SplitParity()
	evenShape := analyzeBranch(even, d.tol)
	oddShape := analyzeBranch(odd, d.tol)
	if evenShape.kind != branchArithmetic || oddShape.kind != branchGeometric {
		return Match{}, false
	}
	return Match{
		RuleType:   sequence.RuleHybrid,
		Confidence: 0.82,
		Description: fmt.Sprintf("Odd positions step by %s while even positions multiply by %s",
			format.Signed(evenShape.diff), format.Number(oddShape.ratio)),
		Formula: fmt.Sprintf("a(n+2) = a(n) %s or a(n) · %s by position parity",
			format.Signed(evenShape.diff), format.Number(oddShape.ratio)),
		Next: continueInterleaved(seq, evenShape, oddShape),
	}, true
}

// ParityGroups matches integer sequences that alternate between runs of
// even and odd numbers in a fixed group size, with every stride
// sub-sequence advancing arithmetically, e.g. 2,4, 1,3, 6,8, 5,7.
type ParityGroups struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *ParityGroups) Name() string { return "parity_groups" }

// Detect tries group sizes smallest first. Group size g needs 4g terms
// so each of the 2g stride sub-sequences holds two or more values.
func (d *ParityGroups) Detect(seq sequence.Sequence) (Match, bool) {
	ints := make([]int64, 0, seq.Len())
	for _, v := range seq {
		i, ok := d.tol.NearInteger(v)
		if !ok {
			return Match{}, false
		}
		ints = append(ints, i)
	}
	for g := 1; 4*g <= seq.Len(); g++ {
		if m, ok := d.detectWithGroupSize(seq, ints, g); ok {
			return m, true
		}
	}
	return Match{}, false
}

func (d *ParityGroups) detectWithGroupSize(seq sequence.Sequence, ints []int64, g int) (Match, bool) {
	firstParity := mod2(ints[0])
	for i, v := range ints {
		group := i / g
		want := firstParity
		if group%2 == 1 {
			want = 1 - firstParity
		}
		if mod2(v) != want {
			return Match{}, false
		}
	}
	// Each stride-(2g) sub-sequence must advance by its own constant.
	stride := 2 * g
	strideDiffs := make([]float64, stride)
	for r := 0; r < stride; r++ {
		var sub []float64
		for i := r; i < seq.Len(); i += stride {
			sub = append(sub, seq[i])
		}
		diffs := metrics.Differences(sub)
		if len(diffs) == 0 || !metrics.AllApproximatelyEqual(diffs, d.tol) {
			return Match{}, false
		}
		strideDiffs[r] = diffs[0]
	}
	ext := seq.Clone()
	next := make([]float64, 0, 3)
	for gi := seq.Len(); gi < seq.Len()+3; gi++ {
		v := ext[gi-stride] + strideDiffs[gi%stride]
		ext = append(ext, v)
		next = append(next, v)
	}
	parityName := [2]string{"even", "odd"}
	return Match{
		RuleType:   sequence.RuleHybrid,
		Confidence: 0.95,
		Description: fmt.Sprintf("Alternating groups of %d %s and %d %s numbers",
			g, parityName[firstParity], g, parityName[1-firstParity]),
		Formula: fmt.Sprintf("parity alternates every %d terms", g),
		Next:    next,
	}, true
}

func mod2(v int64) int {
	if v%2 == 0 {
		return 0
	}
	return 1
}
