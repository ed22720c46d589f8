package engine

import "math"

// Verdict says which side of a comparison won one metric.
type Verdict string

const (
	VerdictLeft  Verdict = "left"
	VerdictRight Verdict = "right"
	VerdictTie   Verdict = "tie"
)

// Comparison is the per-metric outcome of two completed runs over the same
// graph and endpoints. Graph equivalence is the caller's responsibility;
// nothing here checks it.
type Comparison struct {
	Left  Metrics
	Right Metrics

	// Lower wins on every metric; exact equality is a tie.
	NodesVisited Verdict
	EdgesRelaxed Verdict
	PathCost     Verdict
	WallTime     Verdict
}

// Compare judges two completed runs metric by metric. A run that found no
// path carries an infinite path cost, so any found path beats it; two
// pathless runs tie on cost.
func Compare(left, right Metrics) Comparison {
	return Comparison{
		Left:         left,
		Right:        right,
		NodesVisited: lower(float64(left.NodesVisited), float64(right.NodesVisited)),
		EdgesRelaxed: lower(float64(left.EdgesRelaxed), float64(right.EdgesRelaxed)),
		PathCost:     lower(costOf(left), costOf(right)),
		WallTime:     lower(float64(left.Duration), float64(right.Duration)),
	}
}

func costOf(m Metrics) float64 {
	if !m.PathFound {
		return math.Inf(1)
	}

	return m.PathCost
}

func lower(l, r float64) Verdict {
	switch {
	case l < r:
		return VerdictLeft
	case r < l:
		return VerdictRight
	default:
		return VerdictTie
	}
}
