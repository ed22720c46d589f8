// Floyd-Warshall: all-pairs shortest paths by dynamic programming over
// intermediate vertices.
//
// The distance table is a gonum mat.Dense indexed by the sorted vertex
// order, with math.Inf(1) as the "no path yet" marker, paired with a
// next-hop table for path extraction. Each improving cell update is an
// observable step (or, with WithCondensedMatrix, folded into per-round
// summaries). The terminal step extracts the requested source→target path
// from the next-hop table; a negative diagonal entry after the final round
// reports a negative cycle the same way Bellman-Ford does.
//
// Complexity: O(V³) time, O(V²) space.

package algorithms

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeFloydWarshall is the displayable listing; Step.Line indexes into it.
var PseudocodeFloydWarshall = []string{
	"def FloydWarshall(graph, source, target):",        // 0
	"    dist ← |V|×|V| matrix of ∞",                   // 1
	"    dist[v][v] ← 0;  dist[u][v] ← w(u, v)",        // 2
	"    for k in V:",                                  // 3
	"        for i in V:",                              // 4
	"            for j in V:",                          // 5
	"                alt ← dist[i][k] + dist[k][j]",    // 6
	"                if alt < dist[i][j]:",             // 7
	"                    dist[i][j] ← alt",             // 8
	"                    next[i][j] ← next[i][k]",      // 9
	"    return extract_path(source, target)",          // 10
}

// FloydWarshall returns the lazy step sequence of the all-pairs
// Floyd-Warshall algorithm, reporting the source→target path at the end.
// The graph must be weighted; negative weights are legal, negative cycles
// are detected and reported in the terminal Result.
func FloydWarshall(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, true, false); err != nil {
		return nil, err
	}
	o := resolveOptions(opts)

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0
		inf := math.Inf(1)

		nodes := g.Vertices()
		v := len(nodes)
		index := make(map[string]int, v)
		for i, id := range nodes {
			index[id] = i
		}

		dist := mat.NewDense(v, v, nil)
		next := make([][]int, v)
		for i := range next {
			next[i] = make([]int, v)
			for j := range next[i] {
				dist.Set(i, j, inf)
				next[i][j] = -1
			}
			dist.Set(i, i, 0)
			next[i][i] = i
		}

		// Seed direct edges: the lowest weight wins among parallel edges,
		// arcs touching a blocked endpoint never enter the table.
		seedArc := func(from, to int, w float64, edgeID string) {
			if w < dist.At(from, to) {
				dist.Set(from, to, w)
				next[from][to] = to
				b.RelaxEdge(edgeID)
			}
		}
		for _, e := range g.Edges() {
			if blocked(g, e.From) || blocked(g, e.To) {
				continue
			}
			seedArc(index[e.From], index[e.To], e.Weight, e.ID)
			if !e.Directed {
				seedArc(index[e.To], index[e.From], e.Weight, e.ID)
			}
		}

		rows := func() []MatrixRow {
			out := make([]MatrixRow, v)
			for i, id := range nodes {
				vals := make([]float64, v)
				for j := 0; j < v; j++ {
					vals[j] = dist.At(i, j)
				}
				out[i] = MatrixRow{Label: id, Values: vals}
			}

			return out
		}

		putMatrix := func() {
			b.Put("matrix", rows())
			b.Put("nodes", append([]string(nil), nodes...))
		}

		var order []string
		relaxed := 0

		// Initialisation step with the seeded matrix.
		b.MarkNode(source, step.StateSource)
		b.MarkNode(target, step.StateTarget)
		b.SetLine(2)
		b.Explainf("Init: %d×%d matrix, diagonal 0, direct edges seeded, ∞ elsewhere.", v, v)
		putMatrix()
		if !yield(b.Build(n)) {
			return
		}
		n++

		for k, kID := range nodes {
			if blocked(g, kID) {
				continue // a blocked vertex never serves as an intermediate
			}
			order = append(order, kID)

			// Round start: kID becomes the allowed intermediate.
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(kID)
			b.SetLine(3)
			b.Explainf("Round %q: allow paths routed through %q.", kID, kID)
			b.Put("k", kID)
			putMatrix()
			if !yield(b.Build(n)) {
				return
			}
			n++

			improved := 0
			for i := 0; i < v; i++ {
				dik := dist.At(i, k)
				if math.IsInf(dik, 1) {
					continue
				}
				for j := 0; j < v; j++ {
					alt := dik + dist.At(k, j)
					if alt >= dist.At(i, j) {
						continue
					}
					dist.Set(i, j, alt)
					next[i][j] = next[i][k]
					relaxed++
					improved++

					if o.CondensedMatrix {
						continue
					}
					b.Reset()
					b.SetVisited(order)
					b.SetCurrent(kID)
					b.MarkNode(nodes[i], step.StateFrontier)
					b.MarkNode(nodes[j], step.StateFrontier)
					b.SetLine(8)
					b.Explainf("dist[%s][%s] drops to %g via %q.", nodes[i], nodes[j], alt, kID)
					b.Put("k", kID)
					b.Put("highlight", []string{nodes[i], nodes[j]})
					putMatrix()
					if !yield(b.Build(n)) {
						return
					}
					n++
				}
			}

			// Round end summary.
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(kID)
			b.SetLine(3)
			b.Explainf("Round %q complete: %d cell(s) improved.", kID, improved)
			b.Put("k", kID)
			putMatrix()
			if !yield(b.Build(n)) {
				return
			}
			n++
		}

		// A negative diagonal means some vertex reaches itself at a loss.
		for i := 0; i < v; i++ {
			if dist.At(i, i) < 0 {
				b.Reset()
				b.SetVisited(order)
				b.SetLine(10)
				b.Explainf("Negative cycle through %q (dist[%s][%s]=%g); shortest paths are undefined.",
					nodes[i], nodes[i], nodes[i], dist.At(i, i))
				b.Put("negative_cycle", true)
				putMatrix()
				yield(b.BuildFinal(n, step.Result{
					Path:          nil,
					NodesVisited:  len(order),
					EdgesRelaxed:  relaxed,
					NegativeCycle: true,
				}))

				return
			}
		}

		si, ti := index[source], index[target]
		if math.IsInf(dist.At(si, ti), 1) {
			b.Reset()
			b.SetVisited(order)
			b.SetLine(10)
			b.Explainf("All rounds done, but dist[%s][%s] is still ∞: no path.", source, target)
			putMatrix()
			yield(b.BuildFinal(n, step.Result{
				Path:         nil,
				NodesVisited: len(order),
				EdgesRelaxed: relaxed,
			}))

			return
		}

		// Walk the next-hop table from source to target.
		path := []string{source}
		for cur := si; cur != ti; {
			cur = next[cur][ti]
			path = append(path, nodes[cur])
		}

		b.Reset()
		b.SetVisited(order)
		b.SetLine(10)
		b.SetPath(path)
		markPathEdges(g, b, path)
		b.Explainf("Path %s→%s extracted from the next-hop table, cost %g.", source, target, dist.At(si, ti))
		putMatrix()
		yield(b.BuildFinal(n, step.Result{
			Path:         path,
			PathCost:     dist.At(si, ti),
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
