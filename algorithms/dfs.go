// Depth-first search with an explicit stack and mark-on-pop semantics.
//
// DFS dives as deep as possible before backtracking, so the path it reports
// is valid but NOT guaranteed shortest; that is inherent to the algorithm
// and deliberately left visible. The overlay exposes the full stack at
// every step.
// Complexity: O(V + E) time, O(V) space.

package algorithms

import (
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// PseudocodeDFS is the displayable listing; Step.Line indexes into it.
var PseudocodeDFS = []string{
	"def DFS(graph, source, target):",          // 0
	"    stack ← [source]",                     // 1
	"    visited ← {}",                         // 2
	"    parent ← {}",                          // 3
	"    while stack is not empty:",            // 4
	"        node ← stack.pop()",               // 5
	"        if node in visited: continue",     // 6
	"        visited.add(node)",                // 7
	"        if node == target: return path",   // 8
	"        for neighbour in adj(node):",      // 9
	"            if neighbour not visited:",    // 10
	"                parent[neighbour] = node", // 11
	"                stack.push(neighbour)",    // 12
	"    return NOT FOUND",                     // 13
}

// DFS returns the lazy step sequence of a depth-first search from source
// to target. A vertex may sit on the stack more than once; it is finalized
// (and skipped thereafter) the first time it is popped.
func DFS(g *core.Graph, source, target string, opts ...Option) (step.Seq, error) {
	if err := validate(g, source, target, false, false); err != nil {
		return nil, err
	}
	_ = resolveOptions(opts)

	return func(yield func(step.Step) bool) {
		b := step.NewBuilder()
		n := 0

		stack := []string{source}
		seen := make(map[string]bool)
		var order []string
		parent := make(map[string]string)
		relaxed := 0

		pending := func() []string {
			var out []string
			for _, id := range stack {
				if !seen[id] {
					out = append(out, id)
				}
			}

			return out
		}

		// Initialisation step.
		b.SetCurrent(source)
		b.SetFrontier(stack)
		b.MarkNode(target, step.StateTarget)
		b.SetLine(1)
		b.Explainf("Initialise: push source %q. DFS dives as deep as possible before backtracking.", source)
		b.Put("stack", append([]string(nil), stack...))
		if !yield(b.Build(n)) {
			return
		}
		n++

		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if seen[node] {
				// Stale stack entry (mark-on-pop strategy).
				b.Reset()
				b.SetVisited(order)
				b.SetFrontier(pending())
				b.SetLine(6)
				b.Explainf("Pop %q - already visited, skip.", node)
				b.Put("stack", append([]string(nil), stack...))
				if !yield(b.Build(n)) {
					return
				}
				n++

				continue
			}

			seen[node] = true
			order = append(order, node)

			// Pop-and-visit event.
			b.Reset()
			b.SetVisited(order)
			b.SetCurrent(node)
			b.SetFrontier(pending())
			b.SetLine(7)
			b.Explainf("Pop %q and mark visited; its neighbours are explored before any backtracking.", node)
			b.Put("stack", append([]string(nil), stack...))
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
				b.Explainf("Target %q found after %d edge(s); DFS does not guarantee this path is shortest.", target, len(path)-1)
				b.Put("stack", append([]string(nil), stack...))
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

				// Edge-examination event.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetFrontier(pending())
				b.SetLine(9)
				if seen[nbr] {
					b.IgnoreEdge(e.ID)
					b.Explainf("Edge %s→%s: %q already visited - ignore.", node, nbr, nbr)
				} else {
					b.RelaxEdge(e.ID)
					relaxed++
					b.Explainf("Edge %s→%s: %q unseen - push onto stack.", node, nbr, nbr)
				}
				b.Put("stack", append([]string(nil), stack...))
				if !yield(b.Build(n)) {
					return
				}
				n++

				if seen[nbr] {
					continue
				}
				if _, ok := parent[nbr]; !ok {
					parent[nbr] = node
				}
				stack = append(stack, nbr)

				// Push event.
				b.Reset()
				b.SetVisited(order)
				b.SetCurrent(node)
				b.SetFrontier(pending())
				b.MarkNode(nbr, step.StateFrontier)
				b.SetLine(12)
				b.Explainf("Push %q onto the stack (parent %q).", nbr, node)
				b.Put("stack", append([]string(nil), stack...))
				if !yield(b.Build(n)) {
					return
				}
				n++
			}
		}

		// Stack exhausted without reaching the target.
		b.Reset()
		b.SetVisited(order)
		b.SetLine(13)
		b.Explainf("Stack empty: %q is not reachable from %q.", target, source)
		b.Put("stack", []string{})
		yield(b.BuildFinal(n, step.Result{
			Path:         nil,
			NodesVisited: len(order),
			EdgesRelaxed: relaxed,
		}))
	}, nil
}
