// Breadth-first search over an unweighted (or weight-ignoring) graph.
//
// BFS emits a Step at every meaningful event:
//  1. initialisation (source enqueued)
//  2. dequeue of a vertex, which becomes current
//  3. examination of each incident edge (relaxed for discoveries,
//     ignored for already-seen neighbors)
//  4. enqueue of a newly discovered neighbor
//  5. terminal: target reached (path reconstructed via the predecessor
//     map) or queue exhausted (nil path)
//
// The frontier is strictly FIFO, so ties are broken by insertion order.
// Complexity: O(V + E) time, O(V) space (excluding emitted snapshots).

package algorithms

import (
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeBFS is the displayable listing; Step.Line indexes into it.
var PseudocodeBFS = []string{
	"def BFS(graph, source, target):",          // 0
	"    queue ← [source]",                     // 1
	"    visited ← {source}",                   // 2
	"    parent ← {}",                          // 3
	"    while queue is not empty:",            // 4
	"        node ← queue.dequeue()",           // 5
	"        if node == target: return path",   // 6
	"        for neighbour in adj(node):",      // 7
	"            if neighbour not visited:",    // 8
	"                visited.add(neighbour)",   // 9
	"                parent[neighbour] = node", // 10
	"                queue.enqueue(neighbour)", // 11
	"    return NOT FOUND",                     // 12
}

// BFS returns the lazy step sequence of a breadth-first search from source
// to target. Weights, if present, are ignored for ordering but still summed
// into the terminal path cost.
func BFS(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, false, false); err != nil {
		return nil, err
	}
	_ = resolveOptions(opts) // BFS has no tunables today

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0

		queue := []string{source}
		seen := map[string]bool{source: true}
		order := []string{source}
		parent := make(map[string]string)
		relaxed := 0

		// Initialisation step.
		b.SetCurrent(source)
		b.SetFrontier(queue)
		b.MarkNode(target, step.StateTarget)
		b.SetLine(1)
		b.Explainf("Initialise: source %q is enqueued and marked visited. BFS explores layer by layer from here.", source)
		b.Put("queue", append([]string(nil), queue...))
		if !yield(b.Build(n)) {
			return
		}
		n++

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]

			// Dequeue event.
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(node)
			b.SetFrontier(queue)
			b.SetLine(5)
			b.Explainf("Dequeue %q - the earliest discovered vertex (FIFO) becomes current.", node)
			b.Put("queue", append([]string(nil), queue...))
			if !yield(b.Build(n)) {
				return
			}
			n++

			if node == target {
				path := reconstructPath(parent, target)
				cost, _ := g.PathCost(path)
				b.Reset()
				b.SetVisited(order)
				b.SetLine(6)
				b.SetPath(path)
				markPathEdges(g, b, path)
				b.Explainf("Target %q reached: shortest path by hop count has %d edge(s).", target, len(path)-1)
				b.Put("queue", append([]string(nil), queue...))
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
				if blocked(g, nbr) {
					continue
				}

				discovery := !seen[nbr]

				// Edge-examination event.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetFrontier(queue)
				b.SetLine(7)
				if discovery {
					b.RelaxEdge(e.ID)
					relaxed++
					b.Explainf("Examine edge %s→%s: %q is new - enqueue it.", node, nbr, nbr)
				} else {
					b.IgnoreEdge(e.ID)
					b.Explainf("Examine edge %s→%s: %q already visited - skip.", node, nbr, nbr)
				}
				b.Put("queue", append([]string(nil), queue...))
				if !yield(b.Build(n)) {
					return
				}
				n++

				if !discovery {
					continue
				}
				seen[nbr] = true
				order = append(order, nbr)
				parent[nbr] = node
				queue = append(queue, nbr)

				// Enqueue event.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetFrontier(queue)
				b.MarkNode(nbr, step.StateFrontier)
				b.SetLine(11)
				b.Explainf("Enqueue %q (parent %q); it expands after the current depth layer.", nbr, node)
				b.Put("queue", append([]string(nil), queue...))
				if !yield(b.Build(n)) {
					return
				}
				n++
			}
		}

		// Frontier exhausted without reaching the target.
		b.Reset()
		b.SetVisited(order)
		b.SetLine(12)
		b.Explainf("Queue is empty: %q is not reachable from %q.", target, source)
		b.Put("queue", []string{})
		yield(b.BuildFinal(n, step.Result{
			Path:         nil,
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
