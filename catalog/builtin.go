package catalog

import "github.com/katalvlaran/pathlab/algorithms"

// Built-in registration order is the canonical display order.
func init() {
	mustRegister(Descriptor{
		Key:             "bfs",
		Label:           "Breadth-First Search",
		Tags:            []string{"unweighted", "shortest-path"},
		TimeComplexity:  "O(V + E)",
		SpaceComplexity: "O(V)",
		Description: "Explores the graph layer by layer from the source. " +
			"Guarantees a minimum-hop path; edge weights are ignored for ordering.",
		Pseudocode: algorithms.PseudocodeBFS,
		New:        algorithms.BFS,
	})
	mustRegister(Descriptor{
		Key:             "dfs",
		Label:           "Depth-First Search",
		Tags:            []string{"unweighted", "traversal"},
		TimeComplexity:  "O(V + E)",
		SpaceComplexity: "O(V)",
		Description: "Dives along one branch before backtracking. Finds a path " +
			"if one exists, with no shortness guarantee of any kind.",
		Pseudocode: algorithms.PseudocodeDFS,
		New:        algorithms.DFS,
	})
	mustRegister(Descriptor{
		Key:             "dijkstra",
		Label:           "Dijkstra",
		Tags:            []string{"weighted", "shortest-path"},
		TimeComplexity:  "O((V + E) log V)",
		SpaceComplexity: "O(V + E)",
		Description: "Expands vertices in order of tentative distance. Optimal " +
			"on non-negative weights; negative weights are rejected up front.",
		Pseudocode: algorithms.PseudocodeDijkstra,
		New:        algorithms.Dijkstra,
	})
	mustRegister(Descriptor{
		Key:             "astar",
		Label:           "A*",
		Tags:            []string{"weighted", "shortest-path", "heuristic"},
		TimeComplexity:  "O((V + E) log V)",
		SpaceComplexity: "O(V + E)",
		Description: "Dijkstra ordered by f = g + h. With an admissible " +
			"heuristic the result is optimal; with the zero heuristic it is Dijkstra.",
		HasHeuristic: true,
		Pseudocode:   algorithms.PseudocodeAStar,
		New:          algorithms.AStar,
	})
	mustRegister(Descriptor{
		Key:             "greedy",
		Label:           "Greedy Best-First",
		Tags:            []string{"weighted", "heuristic"},
		TimeComplexity:  "O((V + E) log V)",
		SpaceComplexity: "O(V + E)",
		Description: "Orders expansion purely by the heuristic estimate. Fast " +
			"and intentionally not optimal; contrast with A* on the same graph.",
		HasHeuristic: true,
		Pseudocode:   algorithms.PseudocodeGreedy,
		New:          algorithms.GreedyBestFirst,
	})
	mustRegister(Descriptor{
		Key:             "bidi-bfs",
		Label:           "Bidirectional BFS",
		Tags:            []string{"unweighted", "shortest-path"},
		TimeComplexity:  "O(b^(d/2))",
		SpaceComplexity: "O(b^(d/2))",
		Description: "Two breadth-first waves, one from each endpoint, meeting " +
			"in the middle. The path is stitched from both predecessor chains.",
		Pseudocode: algorithms.PseudocodeBidirectionalBFS,
		New:        algorithms.BidirectionalBFS,
	})
	mustRegister(Descriptor{
		Key:             "bellman-ford",
		Label:           "Bellman-Ford",
		Tags:            []string{"weighted", "shortest-path", "negative-weights"},
		TimeComplexity:  "O(V · E)",
		SpaceComplexity: "O(V)",
		Description: "Relaxes every edge |V|-1 times, so negative weights are " +
			"fine, and a detector pass reports negative cycles explicitly.",
		SupportsNegative: true,
		Pseudocode:       algorithms.PseudocodeBellmanFord,
		New:              algorithms.BellmanFord,
	})
	mustRegister(Descriptor{
		Key:             "floyd-warshall",
		Label:           "Floyd-Warshall",
		Tags:            []string{"weighted", "all-pairs", "negative-weights"},
		TimeComplexity:  "O(V³)",
		SpaceComplexity: "O(V²)",
		Description: "All-pairs distances by dynamic programming over allowed " +
			"intermediates. The requested pair's path is read off a next-hop table.",
		SupportsNegative: true,
		AllPairs:         true,
		Pseudocode:       algorithms.PseudocodeFloydWarshall,
		New:              algorithms.FloydWarshall,
	})
}
