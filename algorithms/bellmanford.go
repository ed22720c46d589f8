// Bellman-Ford: single-source shortest paths with negative edge weights.
//
// |V|-1 relaxation rounds scan every directed edge (undirected edges are
// scanned in both orientations) in stable edge-ID order. A round that
// relaxes nothing terminates the rounds early. One extra detector pass
// follows: any still-improvable edge proves a negative cycle, reported as
// a distinguished terminal condition with a nil path and the NegativeCycle
// flag set, never as an error.
//
// Re-relaxation across rounds is by design and is the one sanctioned
// exception to the "never re-expand a finalized vertex" rule. An edge
// counts toward the relaxation metric once per improving event, not once
// per scan.
//
// Complexity: O(V·E) time, O(V) space.

package algorithms

import (
	"math"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeBellmanFord is the displayable listing; Step.Line indexes into it.
var PseudocodeBellmanFord = []string{
	"def BellmanFord(graph, source):",       // 0
	"    dist ← {v: ∞ for v in V}",          // 1
	"    dist[source] ← 0",                  // 2
	"    parent ← {}",                       // 3
	"    for i in 1 … |V|-1:",               // 4
	"        for each edge (u, v, w):",      // 5
	"            if dist[u] + w < dist[v]:", // 6
	"                dist[v] ← dist[u] + w", // 7
	"                parent[v] = u",         // 8
	"    // negative-cycle check:",          // 9
	"    for each edge (u, v, w):",          // 10
	"        if dist[u] + w < dist[v]:",     // 11
	"            return NEGATIVE CYCLE",     // 12
	"    return dist, parent",               // 13
}

// bfArc is one directed scan orientation of a stored edge.
type bfArc struct {
	from, to string
	weight   float64
	edgeID   string
}

// BellmanFord returns the lazy step sequence of Bellman-Ford from source to
// target. The graph must be weighted; negative weights are legal here.
func BellmanFord(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, true, false); err != nil {
		return nil, err
	}
	_ = resolveOptions(opts)

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0
		inf := math.Inf(1)

		vertices := g.Vertices()
		v := len(vertices)

		// Stable scan order: edge-ID order, undirected edges both ways.
		var arcs []bfArc
		for _, e := range g.Edges() {
			if blocked(g, e.From) || blocked(g, e.To) {
				continue
			}
			arcs = append(arcs, bfArc{from: e.From, to: e.To, weight: e.Weight, edgeID: e.ID})
			if !e.Directed {
				arcs = append(arcs, bfArc{from: e.To, to: e.From, weight: e.Weight, edgeID: e.ID})
			}
		}

		dist := make(map[string]float64, v)
		for _, id := range vertices {
			dist[id] = inf
		}
		dist[source] = 0
		parent := make(map[string]string)
		reached := []string{source}
		relaxed := 0

		// Initialisation step.
		b.SetCurrent(source)
		b.MarkNode(target, step.StateTarget)
		b.SetDistances(dist)
		b.SetLine(2)
		b.Explainf("Init: dist[%s]=0, all others ∞; up to %d rounds over %d directed arcs follow.", source, v-1, len(arcs))
		b.Put("round", 0)
		if !yield(b.Build(n)) {
			return
		}
		n++

		for round := 1; round < v; round++ {
			anyRelaxed := false

			// Round-start summary.
			b.Reset()
			b.SetVisited(reached)
			b.SetDistances(dist)
			b.SetLine(4)
			b.Explainf("Round %d of %d: scan every arc.", round, v-1)
			b.Put("round", round)
			if !yield(b.Build(n)) {
				return
			}
			n++

			for _, a := range arcs {
				if math.IsInf(dist[a.from], 1) {
					continue // cannot relax out of an unreached vertex
				}
				newDist := dist[a.from] + a.weight

				b.Reset()
				b.SetVisited(reached)
				b.SetCurrent(a.from)
				b.SetLine(6)
				b.Put("round", round)
				if newDist < dist[a.to] {
					if math.IsInf(dist[a.to], 1) {
						reached = append(reached, a.to)
					}
					dist[a.to] = newDist
					parent[a.to] = a.from
					anyRelaxed = true
					b.RelaxEdge(a.edgeID)
					relaxed++
					b.MarkNode(a.to, step.StateFrontier)
					b.Explainf("Relax %s→%s (w=%g): dist[%s] drops to %g.", a.from, a.to, a.weight, a.to, newDist)
				} else {
					b.IgnoreEdge(a.edgeID)
					b.Explainf("Arc %s→%s (w=%g): %g does not improve on %g.", a.from, a.to, a.weight, newDist, dist[a.to])
				}
				b.SetDistances(dist)
				if !yield(b.Build(n)) {
					return
				}
				n++
			}

			// Round-end summary, with early exit on convergence.
			b.Reset()
			b.SetVisited(reached)
			b.SetDistances(dist)
			b.SetLine(4)
			b.Put("round", round)
			if !anyRelaxed {
				b.Explainf("Round %d relaxed nothing: distances converged, remaining rounds skipped.", round)
				if !yield(b.Build(n)) {
					return
				}
				n++

				break
			}
			b.Explainf("Round %d complete.", round)
			if !yield(b.Build(n)) {
				return
			}
			n++
		}

		// Detector pass: one more scan over all arcs.
		b.Reset()
		b.SetVisited(reached)
		b.SetDistances(dist)
		b.SetLine(10)
		b.Explainf("Detector round: any further improvement proves a negative cycle.")
		b.Put("round", v)
		if !yield(b.Build(n)) {
			return
		}
		n++

		for _, a := range arcs {
			if math.IsInf(dist[a.from], 1) {
				continue
			}
			if dist[a.from]+a.weight < dist[a.to] {
				b.Reset()
				b.SetVisited(reached)
				b.SetDistances(dist)
				b.SetLine(12)
				b.IgnoreEdge(a.edgeID)
				b.Explainf("Negative cycle: arc %s→%s still improves (%g < %g); shortest paths are undefined.",
					a.from, a.to, dist[a.from]+a.weight, dist[a.to])
				b.Put("round", v)
				b.Put("negative_cycle", true)
				yield(b.BuildFinal(n, step.Result{
					Path:          nil,
					NodesVisited:  len(reached),
					EdgesRelaxed:  relaxed,
					NegativeCycle: true,
				}))

				return
			}
		}

		if math.IsInf(dist[target], 1) {
			b.Reset()
			b.SetVisited(reached)
			b.SetDistances(dist)
			b.SetLine(13)
			b.Explainf("No negative cycle, but %q is unreachable (dist = ∞).", target)
			b.Put("negative_cycle", false)
			yield(b.BuildFinal(n, step.Result{
				Path:         nil,
				NodesVisited: len(reached),
				EdgesRelaxed: relaxed,
			}))

			return
		}

		path := reconstructPath(parent, target)
		b.Reset()
		b.SetVisited(reached)
		b.SetDistances(dist)
		b.SetLine(13)
		b.SetPath(path)
		markPathEdges(g, b, path)
		b.Explainf("No negative cycle; shortest path to %q costs %g.", target, dist[target])
		b.Put("negative_cycle", false)
		yield(b.BuildFinal(n, step.Result{
			Path:         path,
			PathCost:     dist[target],
			NodesVisited: len(reached),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
