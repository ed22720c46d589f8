// Dijkstra's shortest-path algorithm on weighted graphs with non-negative
// edge weights.
//
// The executable processes vertices in order of increasing tentative
// distance using the shared lazy-decrease-key min-heap: improvements push
// duplicate entries and stale entries are skipped when popped (each skip is
// itself an observable step). A vertex is current only when popped, never
// when enqueued, and once popped its distance is final.
//
// Negative weights are a configuration error reported by the constructor,
// never a silently wrong answer.
//
// Complexity: O((V + E) log V) time, O(V + E) space.

package algorithms

import (
	"math"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeDijkstra is the displayable listing; Step.Line indexes into it.
var PseudocodeDijkstra = []string{
	"def Dijkstra(graph, source, target):",       // 0
	"    dist ← {v: ∞ for v in V}",               // 1
	"    dist[source] ← 0",                       // 2
	"    pq ← [(0, source)]",                     // 3
	"    parent ← {}",                            // 4
	"    while pq is not empty:",                 // 5
	"        (d, node) ← pq.pop_min()",           // 6
	"        if d > dist[node]: continue",        // 7
	"        if node == target: return path",     // 8
	"        for (neighbour, w) in adj(node):",   // 9
	"            new_dist ← dist[node] + w",      // 10
	"            if new_dist < dist[neighbour]:", // 11
	"                dist[neighbour] ← new_dist", // 12
	"                parent[neighbour] = node",   // 13
	"                pq.push((new_dist, nbr))",   // 14
	"    return NOT FOUND",                       // 15
}

// Dijkstra returns the lazy step sequence of Dijkstra's algorithm from
// source to target. The graph must be weighted and free of negative
// weights; both are validated before the first step.
func Dijkstra(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, true, true); err != nil {
		return nil, err
	}
	_ = resolveOptions(opts)

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0

		dist := make(map[string]float64, g.VertexCount())
		for _, id := range g.Vertices() {
			dist[id] = math.Inf(1)
		}
		dist[source] = 0
		parent := make(map[string]string)
		finalized := make(map[string]bool)
		var order []string
		relaxed := 0

		pq := &minPQ{}
		pq.push(source, 0)

		// Initialisation step.
		b.SetCurrent(source)
		b.MarkNode(target, step.StateTarget)
		b.SetDistances(dist)
		b.SetLine(2)
		b.Explainf("Initialise: every distance is ∞ except dist[%s]=0; push the source into the priority queue.", source)
		b.Put("queue", pq.snapshot(finalized))
		if !yield(b.Build(n)) {
			return
		}
		n++

		for pq.Len() > 0 {
			item := pq.pop()
			node, d := item.id, item.priority

			if d > dist[node] {
				// Stale heap entry left behind by lazy decrease-key.
				b.Reset()
				b.SetVisited(order)
				b.SetDistances(dist)
				b.SetLine(7)
				b.Explainf("Pop (%g, %q) - stale entry, current best is %g; skip.", d, node, dist[node])
				b.Put("queue", pq.snapshot(finalized))
				if !yield(b.Build(n)) {
					return
				}
				n++

				continue
			}

			finalized[node] = true
			order = append(order, node)

			// Pop event: the distance of node is now final.
			qs := pq.snapshot(finalized)
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(node)
			b.SetFrontier(frontierIDs(qs))
			b.SetDistances(dist)
			b.SetLine(6)
			b.Explainf("Pop %q with distance %g - the smallest in the queue, so this distance is final.", node, d)
			b.Put("queue", qs)
			if !yield(b.Build(n)) {
				return
			}
			n++

			if node == target {
				path := reconstructPath(parent, target)
				b.Reset()
				b.SetVisited(order)
				b.SetDistances(dist)
				b.SetLine(8)
				b.SetPath(path)
				markPathEdges(g, b, path)
				b.Explainf("Target %q popped: shortest distance is %g.", target, dist[target])
				b.Put("queue", pq.snapshot(finalized))
				yield(b.BuildFinal(n, step.Result{
					Path:         path,
					PathCost:     dist[target],
					NodesVisited: len(order),
					EdgesRelaxed: relaxed,
				}))

				return
			}

			edges, _ := g.Neighbors(node)
			for _, e := range edges {
				nbr := e.OtherEnd(node)
				if blocked(g, nbr) {
					continue
				}

				if finalized[nbr] {
					// Already finalized: show as ignored, never re-expand.
					b.Reset()
					b.SetVisited(order)
					b.SetCurrent(node)
					b.SetDistances(dist)
					b.SetLine(9)
					b.IgnoreEdge(e.ID)
					b.Explainf("Edge %s→%s (w=%g): %q already finalized - skip.", node, nbr, e.Weight, nbr)
					b.Put("queue", pq.snapshot(finalized))
					if !yield(b.Build(n)) {
						return
					}
					n++

					continue
				}

				newDist := dist[node] + e.Weight

				// Relaxation attempt.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetLine(10)
				if newDist < dist[nbr] {
					b.RelaxEdge(e.ID)
					relaxed++
					b.Explainf("Relax %s→%s: %g + %g = %g improves on %g - update.", node, nbr, dist[node], e.Weight, newDist, dist[nbr])
					dist[nbr] = newDist
					parent[nbr] = node
					pq.push(nbr, newDist)
					b.MarkNode(nbr, step.StateFrontier)
				} else {
					b.IgnoreEdge(e.ID)
					b.Explainf("Edge %s→%s: %g + %g = %g does not improve on %g.", node, nbr, dist[node], e.Weight, newDist, dist[nbr])
				}
				qs := pq.snapshot(finalized)
				b.SetFrontier(frontierIDs(qs))
				b.SetDistances(dist)
				b.Put("queue", qs)
				if !yield(b.Build(n)) {
					return
				}
				n++
			}
		}

		// Queue exhausted without reaching the target.
		b.Reset()
		b.SetVisited(order)
		b.SetDistances(dist)
		b.SetLine(15)
		b.Explainf("Priority queue empty: %q is not reachable from %q.", target, source)
		b.Put("queue", []QueueEntry{})
		yield(b.BuildFinal(n, step.Result{
			Path:         nil,
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
