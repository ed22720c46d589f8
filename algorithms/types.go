// Package algorithms: shared options, sentinel errors, and overlay types
// for the eight step-emitting pathfinding executables.
//
// Every executable has the same shape:
//
//	func Name(g *core.Graph, source, target string, opts ...Option) (step.Seq, error)
//
// Configuration problems (nil graph, unknown endpoint, negative weight where
// forbidden, unknown heuristic) are reported by the constructor, before the
// first Step is ever produced. The returned step.Seq is lazy, finite, and
// restartable: ranging over it again replays the identical run, because the
// sequence closes over nothing but its immutable inputs.
package algorithms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// Sentinel errors shared by all executables.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("algorithms: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent from the graph.
	ErrSourceNotFound = errors.New("algorithms: source vertex not found")

	// ErrTargetNotFound is returned when the target ID is absent from the graph.
	ErrTargetNotFound = errors.New("algorithms: target vertex not found")

	// ErrUnweightedGraph is returned when a weighted-only algorithm is run
	// on a graph that was not built with core.WithWeighted().
	ErrUnweightedGraph = errors.New("algorithms: graph must be weighted")

	// ErrNegativeWeight is returned when a negative edge weight is supplied
	// to an algorithm that forbids it (Dijkstra, A*, Greedy Best-First).
	ErrNegativeWeight = errors.New("algorithms: negative edge weight encountered")

	// ErrUnknownHeuristic is returned for a heuristic key outside the
	// built-in set.
	ErrUnknownHeuristic = errors.New("algorithms: unknown heuristic")
)

// Options holds the tunable parameters shared by the executables.
//
// Heuristic selects the estimator used by A* and Greedy Best-First.
// CondensedMatrix makes Floyd-Warshall emit round summaries instead of one
// step per improving cell, which keeps dense graphs watchable. The other
// algorithms ignore both.
type Options struct {
	Heuristic       Heuristic
	CondensedMatrix bool
}

// Option is a functional option for configuring an executable.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Euclidean heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: HeuristicEuclidean}
}

// WithHeuristic selects the heuristic for A* / Greedy Best-First.
// Validity is checked by the executable constructor, not here.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithCondensedMatrix switches Floyd-Warshall to per-round steps only.
func WithCondensedMatrix() Option {
	return func(o *Options) { o.CondensedMatrix = true }
}

// QueueEntry pairs a vertex with its priority for queue overlays
// (Dijkstra distance, A* f-score, Greedy h-score).
type QueueEntry struct {
	ID       string
	Priority float64
}

// ScoreRow is one vertex's g/h/f triple for the A* score overlay.
type ScoreRow struct {
	ID      string
	G, H, F float64
}

// MatrixRow is one labeled row of the Floyd-Warshall distance matrix
// overlay. math.Inf(1) marks "no path yet".
type MatrixRow struct {
	Label  string
	Values []float64
}

// resolveOptions applies functional options over the defaults.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// validate performs the shared constructor checks in a fixed order:
// nil graph, source presence, target presence, weighted mode, negative
// weights. The boolean switches select which algorithm-specific checks
// apply.
func validate(g *core.Graph, source, target string, requireWeighted, forbidNegative bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(target) {
		return fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	if requireWeighted && !g.Weighted() {
		return ErrUnweightedGraph
	}
	if forbidNegative {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	return nil
}

// reconstructPath walks the predecessor map from target back to the root
// (the one vertex with no parent entry) and returns the path in
// root→target order.
func reconstructPath(parent map[string]string, target string) []string {
	var rev []string
	for cur := target; ; {
		rev = append(rev, cur)
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p
	}
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}

// blocked reports whether the vertex exists and carries the Blocked flag.
// Executables use it to skip obstacles during neighbor iteration.
func blocked(g *core.Graph, id string) bool {
	v, err := g.Vertex(id)

	return err == nil && v.Blocked
}

// markPathEdges applies the chosen classification to every edge along path.
func markPathEdges(g *core.Graph, b *step.Builder, path []string) {
	for i := 0; i+1 < len(path); i++ {
		if e, err := g.EdgeBetween(path[i], path[i+1]); err == nil {
			b.ChooseEdge(e.ID)
		}
	}
}
