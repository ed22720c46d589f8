// Greedy Best-First search: priority is the heuristic alone.
//
// Accumulated cost is ignored entirely, so the reported path is NOT
// guaranteed optimal. That behavior is the whole point of the algorithm
// (contrast it with A* on the same graph) and must not be "fixed".
//
// Complexity: O((V + E) log V) time, O(V + E) space.

package algorithms

import (
	"sort"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeGreedy is the displayable listing; Step.Line indexes into it.
var PseudocodeGreedy = []string{
	"def GreedyBFS(graph, source, target, h):", // 0
	"    open_set ← [(h(source), source)]",     // 1
	"    visited ← {}",                         // 2
	"    parent ← {}",                          // 3
	"    while open_set:",                      // 4
	"        (_, node) ← open_set.pop_min()",   // 5
	"        if node in visited: continue",     // 6
	"        visited.add(node)",                // 7
	"        if node == target: return path",   // 8
	"        for (nbr, w) in adj(node):",       // 9
	"            if nbr not visited:",          // 10
	"                parent[nbr] = node",       // 11
	"                open_set.push((h(nbr)))",  // 12
	"    return NOT FOUND",                     // 13
}

// GreedyBestFirst returns the lazy step sequence of a greedy best-first
// search from source to target, ordered purely by the selected heuristic.
// The graph must be weighted (weights appear in the terminal path cost even
// though they never influence expansion order) and non-negative.
func GreedyBestFirst(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, true, true); err != nil {
		return nil, err
	}
	o := resolveOptions(opts)
	h, err := o.Heuristic.estimator()
	if err != nil {
		return nil, err
	}
	tgt, err := g.Vertex(target)
	if err != nil {
		return nil, err
	}

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0

		hCache := make(map[string]float64)
		hOf := func(id string) float64 {
			if v, ok := hCache[id]; ok {
				return v
			}
			vert, vErr := g.Vertex(id)
			if vErr != nil {
				return 0
			}
			val := h(vert, tgt)
			hCache[id] = val

			return val
		}

		visited := make(map[string]bool)
		var order []string
		parent := make(map[string]string)
		relaxed := 0

		pq := &minPQ{}
		pq.push(source, hOf(source))

		hRows := func() []ScoreRow {
			ids := make([]string, 0, len(hCache))
			for id := range hCache {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			rows := make([]ScoreRow, len(ids))
			for i, id := range ids {
				rows[i] = ScoreRow{ID: id, H: hCache[id]}
			}

			return rows
		}

		// Initialisation step.
		b.SetCurrent(source)
		b.MarkNode(target, step.StateTarget)
		b.SetLine(1)
		b.Explainf("Greedy Best-First: only h matters, cost so far is ignored. h(%s)=%.2f via %s.",
			source, hOf(source), o.Heuristic)
		b.Put("queue", pq.snapshot(visited))
		b.Put("heuristic", string(o.Heuristic))
		b.Put("scores", hRows())
		if !yield(b.Build(n)) {
			return
		}
		n++

		for pq.Len() > 0 {
			item := pq.pop()
			node := item.id
			if visited[node] {
				continue
			}
			visited[node] = true
			order = append(order, node)

			// Pop event.
			qs := pq.snapshot(visited)
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(node)
			b.SetFrontier(frontierIDs(qs))
			b.SetLine(7)
			b.Explainf("Pop %q (h=%.2f) - chosen purely for the smallest estimate; actual path cost is ignored.",
				node, hOf(node))
			b.Put("queue", qs)
			b.Put("scores", hRows())
			if !yield(b.Build(n)) {
				return
			}
			n++

			if node == target {
				path := reconstructPath(parent, target)
				cost, _ := g.PathCost(path)
				b.Reset()
				b.SetVisited(order)
				b.SetLine(8)
				b.SetPath(path)
				markPathEdges(g, b, path)
				b.Explainf("Target %q found; the path costs %.2f but may not be optimal.", target, cost)
				b.Put("scores", hRows())
				yield(b.BuildFinal(n, step.Result{
					Path:         path,
					PathCost:     cost,
					NodesVisited: len(order),
					EdgesRelaxed: relaxed,
				}))

				return
			}

			edges, _ := g.Neighbors(node)
			for _, e := range edges {
				nbr := e.OtherEnd(node)
				if blocked(g, nbr) || visited[nbr] {
					continue
				}

				pq.push(nbr, hOf(nbr))
				if _, ok := parent[nbr]; !ok {
					parent[nbr] = node
				}

				// Push event.
				qs := pq.snapshot(visited)
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetFrontier(frontierIDs(qs))
				b.RelaxEdge(e.ID)
				relaxed++
				b.MarkNode(nbr, step.StateFrontier)
				b.SetLine(12)
				b.Explainf("Push %q (h=%.2f); edge weight %g is irrelevant to greedy ordering.",
					nbr, hOf(nbr), e.Weight)
				b.Put("queue", qs)
				if !yield(b.Build(n)) {
					return
				}
				n++
			}
		}

		// Open set exhausted without reaching the target.
		b.Reset()
		b.SetVisited(order)
		b.SetLine(13)
		b.Explainf("Open set empty: %q is not reachable from %q.", target, source)
		b.Put("scores", hRows())
		yield(b.BuildFinal(n, step.Result{
			Path:         nil,
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
