// This file defines the built-in heuristics for A* and Greedy Best-First.
// All estimators take two vertex records and return the estimated remaining
// cost from the first to the second, using the vertices' planar positions.

package algorithms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
)

// Heuristic selects a built-in remaining-cost estimator.
type Heuristic string

// Built-in heuristics.
//
// Euclidean and Manhattan are admissible on their matching edge geometries;
// Octile is admissible on 8-connected grids with unit straight moves and
// √2 diagonal moves; Zero is trivially admissible everywhere and degrades
// A* to Dijkstra.
const (
	HeuristicEuclidean Heuristic = "euclidean"
	HeuristicManhattan Heuristic = "manhattan"
	HeuristicOctile    Heuristic = "octile"
	HeuristicZero      Heuristic = "zero"
)

// heuristicFunc is the estimator shape used internally.
type heuristicFunc func(a, b core.Vertex) float64

// estimator resolves h into its function, or ErrUnknownHeuristic.
func (h Heuristic) estimator() (heuristicFunc, error) {
	switch h {
	case HeuristicEuclidean:
		return euclidean, nil
	case HeuristicManhattan:
		return manhattan, nil
	case HeuristicOctile:
		return octile, nil
	case HeuristicZero:
		return zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, string(h))
	}
}

// euclidean is the straight-line distance √(Δx²+Δy²).
func euclidean(a, b core.Vertex) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// manhattan is the axis-aligned distance |Δx|+|Δy|.
func manhattan(a, b core.Vertex) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// octile is the diagonal-aware grid distance
// max(|Δx|,|Δy|) + (√2−1)·min(|Δx|,|Δy|).
func octile(a, b core.Vertex) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)

	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// zero estimates nothing. A* with the zero heuristic expands exactly like
// Dijkstra, which is itself a teaching device, not a defect.
func zero(_, _ core.Vertex) float64 { return 0 }
