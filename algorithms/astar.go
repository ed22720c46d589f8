// A* search: Dijkstra ordered by f = g + h with a pluggable heuristic.
//
// The overlay exposes g, h, and f for every touched vertex so a consumer
// can inspect admissibility interactively. With an admissible heuristic the
// reported cost is optimal; with the Zero heuristic the expansion is
// exactly Dijkstra's.
//
// Complexity: O((V + E) log V) time, O(V + E) space.

package algorithms

import (
	"math"
	"sort"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeAStar is the displayable listing; Step.Line indexes into it.
var PseudocodeAStar = []string{
	"def AStar(graph, source, target, h):",         // 0
	"    g[source] ← 0",                            // 1
	"    f[source] ← h(source, target)",            // 2
	"    open_set ← [(f[source], source)]",         // 3
	"    parent ← {}",                              // 4
	"    while open_set:",                          // 5
	"        (_, node) ← open_set.pop_min()",       // 6
	"        if node == target: return path",       // 7
	"        closed.add(node)",                     // 8
	"        for (nbr, w) in adj(node):",           // 9
	"            tentative_g ← g[node] + w",        // 10
	"            if tentative_g < g[nbr]:",         // 11
	"                parent[nbr] = node",           // 12
	"                g[nbr] ← tentative_g",         // 13
	"                f[nbr] ← g[nbr] + h(nbr)",     // 14
	"                open_set.push((f[nbr], nbr))", // 15
	"    return NOT FOUND",                         // 16
}

// AStar returns the lazy step sequence of an A* search from source to
// target using the heuristic selected via WithHeuristic (Euclidean by
// default). The graph must be weighted and free of negative weights.
func AStar(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
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

		gScore := make(map[string]float64, g.VertexCount())
		fScore := make(map[string]float64, g.VertexCount())
		for _, id := range g.Vertices() {
			gScore[id] = math.Inf(1)
			fScore[id] = math.Inf(1)
		}
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

		parent := make(map[string]string)
		closed := make(map[string]bool)
		var order []string
		relaxed := 0

		gScore[source] = 0
		fScore[source] = hOf(source)
		pq := &minPQ{}
		pq.push(source, fScore[source])

		scores := func() []ScoreRow {
			ids := make([]string, 0, len(hCache))
			for id := range hCache {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			rows := make([]ScoreRow, len(ids))
			for i, id := range ids {
				rows[i] = ScoreRow{ID: id, G: gScore[id], H: hCache[id], F: fScore[id]}
			}

			return rows
		}

		// Initialisation step.
		b.SetCurrent(source)
		b.MarkNode(target, step.StateTarget)
		b.SetDistances(gScore)
		b.SetLine(2)
		b.Explainf("A* init: g(%s)=0, h(%s)=%.2f via %s, so f=%.2f; push into the open set.",
			source, source, hOf(source), o.Heuristic, fScore[source])
		b.Put("queue", pq.snapshot(closed))
		b.Put("heuristic", string(o.Heuristic))
		b.Put("scores", scores())
		if !yield(b.Build(n)) {
			return
		}
		n++

		for pq.Len() > 0 {
			item := pq.pop()
			node := item.id
			if closed[node] {
				continue
			}
			closed[node] = true
			order = append(order, node)

			// Pop event.
			qs := pq.snapshot(closed)
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(node)
			b.SetFrontier(frontierIDs(qs))
			b.SetDistances(gScore)
			b.SetLine(6)
			b.Explainf("Pop %q: g=%.2f, h=%.2f, f=%.2f - lowest f in the open set.",
				node, gScore[node], hOf(node), fScore[node])
			b.Put("queue", qs)
			b.Put("scores", scores())
			if !yield(b.Build(n)) {
				return
			}
			n++

			if node == target {
				path := reconstructPath(parent, target)
				b.Reset()
				b.SetVisited(order)
				b.SetDistances(gScore)
				b.SetLine(7)
				b.SetPath(path)
				markPathEdges(g, b, path)
				b.Explainf("Target %q reached with cost %.2f.", target, gScore[target])
				b.Put("scores", scores())
				yield(b.BuildFinal(n, step.Result{
					Path:         path,
					PathCost:     gScore[target],
					NodesVisited: len(order),
					EdgesRelaxed: relaxed,
				}))

				return
			}

			edges, _ := g.Neighbors(node)
			for _, e := range edges {
				nbr := e.OtherEnd(node)
				if blocked(g, nbr) || closed[nbr] {
					continue
				}

				tentative := gScore[node] + e.Weight

				// Relaxation attempt.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetLine(10)
				if tentative < gScore[nbr] {
					gScore[nbr] = tentative
					fScore[nbr] = tentative + hOf(nbr)
					parent[nbr] = node
					pq.push(nbr, fScore[nbr])
					b.RelaxEdge(e.ID)
					relaxed++
					b.MarkNode(nbr, step.StateFrontier)
					b.Explainf("Relax %s→%s: g=%.2f, h=%.2f, f=%.2f - update.",
						node, nbr, tentative, hOf(nbr), fScore[nbr])
				} else {
					b.IgnoreEdge(e.ID)
					b.Explainf("Edge %s→%s: tentative g=%.2f does not improve on %.2f.",
						node, nbr, tentative, gScore[nbr])
				}
				qs := pq.snapshot(closed)
				b.SetFrontier(frontierIDs(qs))
				b.SetDistances(gScore)
				b.Put("queue", qs)
				b.Put("scores", scores())
				if !yield(b.Build(n)) {
					return
				}
				n++
			}
		}

		// Open set exhausted without reaching the target.
		b.Reset()
		b.SetVisited(order)
		b.SetDistances(gScore)
		b.SetLine(16)
		b.Explainf("Open set empty: %q is not reachable from %q.", target, source)
		b.Put("scores", scores())
		yield(b.BuildFinal(n, step.Result{
			Path:         nil,
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
