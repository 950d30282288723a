package detect

import (
	"fmt"
	"math"

	"seqsense/adapters/pattern/metrics"
	"seqsense/domain/core"
	"seqsense/domain/sequence"
	"seqsense/internal/format"
)

// Geometric matches a constant, defined first ratio.
type Geometric struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *Geometric) Name() string { return "geometric" }

// Detect matches sequences with a constant finite ratio and extends
// them by that ratio.
func (d *Geometric) Detect(seq sequence.Sequence) (Match, bool) {
	r, ok := metrics.ConstantRatio(seq, d.tol)
	if !ok {
		return Match{}, false
	}
	last := seq.Last()
	return Match{
		RuleType:   sequence.RuleGeometric,
		Confidence: 0.93,
		Description: fmt.Sprintf("Geometric sequence with common ratio %s",
			format.Number(r)),
		Formula: fmt.Sprintf("a(n) = %s · %s^(n-1)",
			format.Number(seq[0]), format.Number(r)),
		Next: []float64{last * r, last * r * r, last * r * r * r},
	}, true
}

// OrderedRatios matches sequences whose ratios, or ratios of ratios,
// are constant.
type OrderedRatios struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *OrderedRatios) Name() string { return "ordered_ratios" }

// Detect tries first-order then second-order constant ratios. Every
// ratio along the way must be defined.
func (d *OrderedRatios) Detect(seq sequence.Sequence) (Match, bool) {
	ratios, ok := metrics.DefinedValues(metrics.Ratios(seq))
	if !ok || len(ratios) < 2 {
		return Match{}, false
	}
	last := seq.Last()
	if metrics.AllApproximatelyEqual(ratios, d.tol) {
		r := ratios[0]
		return Match{
			RuleType:   sequence.RuleRatio,
			Confidence: 0.90,
			Description: fmt.Sprintf("Successive ratios are constant at %s",
				format.Number(r)),
			Formula: fmt.Sprintf("a(n+1) = a(n) · %s", format.Number(r)),
			Next:    []float64{last * r, last * r * r, last * r * r * r},
		}, true
	}
	second, ok := metrics.DefinedValues(metrics.Ratios(ratios))
	if !ok || len(second) < 2 || !metrics.AllApproximatelyEqual(second, d.tol) {
		return Match{}, false
	}
	k := second[0]
	r := ratios[len(ratios)-1]
	next := make([]float64, 0, 3)
	v := last
	for step := 0; step < 3; step++ {
		r *= k
		v *= r
		next = append(next, v)
	}
	return Match{
		RuleType:   sequence.RuleRatio,
		Confidence: 0.86,
		Description: fmt.Sprintf("Ratios of successive ratios are constant at %s",
			format.Number(k)),
		Formula: fmt.Sprintf("r(n+1) = r(n) · %s", format.Number(k)),
		Next:    next,
	}, true
}

// PowerOfBase matches sequences whose terms are consecutive powers of a
// small integer base.
type PowerOfBase struct {
	tol core.Tolerance
}

// Name returns the detector name.
func (d *PowerOfBase) Name() string { return "power_of_base" }

// Detect tries bases 2 through 10, with the first term being either
// base^0 or base^1.
func (d *PowerOfBase) Detect(seq sequence.Sequence) (Match, bool) {
	for base := 2; base <= 10; base++ {
		for _, start := range []int{0, 1} {
			if !d.matchesBase(seq, float64(base), start) {
				continue
			}
			n := seq.Len()
			b := float64(base)
			next := []float64{
				math.Pow(b, float64(n+start)),
				math.Pow(b, float64(n+start+1)),
				math.Pow(b, float64(n+start+2)),
			}
			return Match{
				RuleType:   sequence.RulePower,
				Confidence: 0.90,
				Description: fmt.Sprintf("Powers of %d starting at %d^%d",
					base, base, start),
				Formula: fmt.Sprintf("a(n) = %d^(n-1+%d)", base, start),
				Next:    next,
			}, true
		}
	}
	return Match{}, false
}

func (d *PowerOfBase) matchesBase(seq sequence.Sequence, base float64, start int) bool {
	for i, v := range seq {
		if !d.tol.WithinOf(v, math.Pow(base, float64(i+start))) {
			return false
		}
	}
	return true
}
