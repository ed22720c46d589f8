// Bidirectional BFS: two frontiers advance in lock-step layers, one from
// the source and one from the target, and the search terminates the moment
// the frontiers' visited sets intersect. The path is stitched from both
// predecessor chains at the meeting vertex.
//
// Backward-frontier vertices are classified frontier-b so a renderer can
// keep the two waves visually distinct. Overlays expose both queues.
//
// Complexity: O(b^(d/2)) time and space on branching factor b, depth d.

package algorithms

import (
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeBidirectionalBFS is the displayable listing; Step.Line indexes into it.
var PseudocodeBidirectionalBFS = []string{
	"def BidiBFS(graph, source, target):",           // 0
	"    qF ← [source];  visitedF ← {source}",       // 1
	"    qB ← [target];  visitedB ← {target}",       // 2
	"    parentF, parentB ← {}, {}",                 // 3
	"    while qF or qB:",                           // 4
	"        if qF:",                                // 5
	"            expand one layer of qF",            // 6
	"            if frontier intersects visitedB:",  // 7
	"                reconstruct & return path",     // 8
	"        if qB:",                                // 9
	"            expand one layer of qB",            // 10
	"            if frontier intersects visitedF:",  // 11
	"                reconstruct & return path",     // 12
	"    return NOT FOUND",                          // 13
}

// BidirectionalBFS returns the lazy step sequence of a meet-in-the-middle
// breadth-first search between source and target.
//
// Both waves expand along traversable arcs, so on a directed graph the
// backward half of the stitched path may run against edge direction.
// Directed inputs therefore get undirected-style meeting semantics; use
// BFS when arc direction must hold along the whole path.
func BidirectionalBFS(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, false, false); err != nil {
		return nil, err
	}
	_ = resolveOptions(opts)

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0

		qF := []string{source}
		qB := []string{target}
		visitedF := map[string]bool{source: true}
		visitedB := map[string]bool{target: true}
		parentF := make(map[string]string)
		parentB := make(map[string]string)
		order := []string{source}
		if target != source {
			order = append(order, target)
		}
		relaxed := 0

		markBackward := func() {
			for id := range visitedB {
				if !visitedF[id] {
					b.MarkNode(id, step.StateFrontierB)
				}
			}
		}

		// stitch joins the two predecessor chains at the meeting vertex.
		stitch := func(meeting string) []string {
			path := reconstructPath(parentF, meeting)
			for cur := meeting; ; {
				p, ok := parentB[cur]
				if !ok {
					break
				}
				path = append(path, p)
				cur = p
			}

			return path
		}

		finish := func(meeting string, line int) {
			path := stitch(meeting)
			cost, _ := g.PathCost(path)
			b.Reset()
			b.SetVisited(order)
			b.SetLine(line)
			b.SetPath(path)
			markPathEdges(g, b, path)
			b.Explainf("Frontiers met at %q: stitched path has %d edge(s).", meeting, len(path)-1)
			b.Put("queue_forward", append([]string(nil), qF...))
			b.Put("queue_backward", append([]string(nil), qB...))
			yield(b.BuildFinal(n, step.Result{
				Path:         path,
				PathCost:     cost,
				NodesVisited: len(order),
				EdgesRelaxed: relaxed,
			}))
		}

		// Initialisation step.
		b.MarkNode(source, step.StateSource)
		b.MarkNode(target, step.StateTarget)
		b.SetLine(1)
		b.Explainf("Bidirectional BFS: forward wave from %q, backward wave from %q.", source, target)
		b.Put("queue_forward", append([]string(nil), qF...))
		b.Put("queue_backward", append([]string(nil), qB...))
		if !yield(b.Build(n)) {
			return
		}
		n++

		if source == target {
			finish(source, 8)

			return
		}

		// expandLayer advances one full BFS layer of the given side.
		// It returns the meeting vertex if the freshly discovered frontier
		// touches the other side's visited set, "" otherwise. The bool
		// result is false when the consumer stopped pulling.
		expandLayer := func(queue *[]string, visited, other map[string]bool, parent map[string]string, line int, label string) (string, bool) {
			layer := len(*queue)
			var fresh []string
			for i := 0; i < layer; i++ {
				node := (*queue)[0]
				*queue = (*queue)[1:]

				// Dequeue event.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetLine(line)
				b.Explainf("[%s] Expand %q.", label, node)
				markBackward()
				b.Put("queue_forward", append([]string(nil), qF...))
				b.Put("queue_backward", append([]string(nil), qB...))
				if !yield(b.Build(n)) {
					return "", false
				}
				n++

				edges, _ := g.Neighbors(node)
				for _, e := range edges {
					nbr := e.OtherEnd(node)
					if blocked(g, nbr) {
						continue
					}

					discovery := !visited[nbr]

					b.Reset()
					b.SetVisited(order)
					b.SetCurrent(node)
					b.SetLine(line)
					markBackward()
					if discovery {
						visited[nbr] = true
						parent[nbr] = node
						*queue = append(*queue, nbr)
						fresh = append(fresh, nbr)
						if !contains(order, nbr) {
							order = append(order, nbr)
						}
						b.RelaxEdge(e.ID)
						relaxed++
						b.MarkNode(nbr, step.StateFrontier)
						b.Explainf("[%s] Edge %s→%s: enqueue %q.", label, node, nbr, nbr)
					} else {
						b.IgnoreEdge(e.ID)
						b.Explainf("[%s] Edge %s→%s: already visited on this side.", label, node, nbr)
					}
					b.Put("queue_forward", append([]string(nil), qF...))
					b.Put("queue_backward", append([]string(nil), qB...))
					if !yield(b.Build(n)) {
						return "", false
					}
					n++
				}
			}

			for _, id := range fresh {
				if other[id] {
					return id, true
				}
			}

			return "", true
		}

		for len(qF) > 0 || len(qB) > 0 {
			if len(qF) > 0 {
				meeting, alive := expandLayer(&qF, visitedF, visitedB, parentF, 6, "Fwd")
				if !alive {
					return
				}
				if meeting != "" {
					finish(meeting, 8)

					return
				}
			}
			if len(qB) > 0 {
				meeting, alive := expandLayer(&qB, visitedB, visitedF, parentB, 10, "Bwd")
				if !alive {
					return
				}
				if meeting != "" {
					finish(meeting, 12)

					return
				}
			}
		}

		// Both frontiers exhausted without meeting.
		b.Reset()
		b.SetVisited(order)
		b.SetLine(13)
		b.Explainf("Both frontiers exhausted: %q and %q are in different components.", source, target)
		b.Put("queue_forward", []string{})
		b.Put("queue_backward", []string{})
		yield(b.BuildFinal(n, step.Result{
			Path:         nil,
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}

// contains reports membership of id in the slice (small inputs only).
func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
