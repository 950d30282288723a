// Package brief computes advisory summary statistics for an input
// sequence, displayed beside its prediction. Nothing here feeds the
// classifier: rule confidences stay fixed constants regardless of what
// the brief says.
package brief

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"seqsense/domain/sequence"
)

// SequenceBrief summarizes one input sequence.
type SequenceBrief struct {
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Range      float64 `json:"range"`
	TrendSlope float64 `json:"trend_slope"`
	Monotonic  string  `json:"monotonic"` // "increasing", "decreasing", "mixed"
	HasZero    bool    `json:"has_zero"`
	AllInteger bool    `json:"all_integer"`
}

// Computer builds sequence briefs.
type Computer struct{}

// NewComputer creates a brief computer.
func NewComputer() *Computer {
	return &Computer{}
}

// Compute summarizes seq. It is defined for any non-empty sequence.
func (c *Computer) Compute(seq sequence.Sequence) SequenceBrief {
	data := []float64(seq)
	if len(data) == 0 {
		return SequenceBrief{}
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)

	// Least-squares slope over term index, as a crude trend indicator.
	xs := make([]float64, len(data))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, data, nil, false)

	return SequenceBrief{
		Count:      len(data),
		Mean:       mean,
		Median:     median,
		StdDev:     stdDev,
		Min:        min,
		Max:        max,
		Range:      max - min,
		TrendSlope: slope,
		Monotonic:  monotonicity(data),
		HasZero:    hasZero(data),
		AllInteger: allInteger(data),
	}
}

func monotonicity(data []float64) string {
	increasing, decreasing := true, true
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			increasing = false
		}
		if data[i] > data[i-1] {
			decreasing = false
		}
	}
	switch {
	case increasing && decreasing:
		return "constant"
	case increasing:
		return "increasing"
	case decreasing:
		return "decreasing"
	default:
		return "mixed"
	}
}

func hasZero(data []float64) bool {
	for _, v := range data {
		if v == 0 {
			return true
		}
	}
	return false
}

func allInteger(data []float64) bool {
	for _, v := range data {
		if v != float64(int64(v)) {
			return false
		}
	}
	return true
}
