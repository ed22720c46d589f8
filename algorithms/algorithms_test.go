package algorithms_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathlab/algorithms"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// collect drains a sequence into a slice.
func collect(t *testing.T, seq step.Seq) []step.Step {
	t.Helper()
	var out []step.Step
	seq(func(st step.Step) bool {
		out = append(out, st)

		return true
	})
	if len(out) == 0 {
		t.Fatal("sequence produced no steps")
	}

	return out
}

// terminal returns the final step after checking the terminal invariants:
// exactly one Final step, it is the last one, and it carries a Result.
func terminal(t *testing.T, steps []step.Step) step.Step {
	t.Helper()
	finals := 0
	for _, st := range steps {
		if st.Final {
			finals++
		}
	}
	if finals != 1 {
		t.Fatalf("found %d final steps; want exactly 1", finals)
	}
	last := steps[len(steps)-1]
	if !last.Final || last.Result == nil {
		t.Fatalf("last step Final=%v Result=%v; want terminal with Result", last.Final, last.Result)
	}

	return last
}

// diamond builds the shared weighted fixture:
//
//	A(0,0) - B(0.5,0.5):1, A - C(0.5,-0.5):4, B - C:2, B - D(1,0):5, C - D:1
//
// Shortest A→D by cost is A,B,C,D (4); by hops it is A,B,D (2 edges, cost 6).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	add := func(id string, x, y float64) {
		if err := g.AddVertexAt(id, x, y); err != nil {
			t.Fatalf("AddVertexAt(%s): %v", id, err)
		}
	}
	add("A", 0, 0)
	add("B", 0.5, 0.5)
	add("C", 0.5, -0.5)
	add("D", 1, 0)
	edge := func(u, v string, w float64) {
		if _, err := g.AddEdge(u, v, w); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", u, v, err)
		}
	}
	edge("A", "B", 1)
	edge("A", "C", 4)
	edge("B", "C", 2)
	edge("B", "D", 5)
	edge("C", "D", 1)

	return g
}

func TestConstructorValidation(t *testing.T) {
	g := diamond(t)
	unweighted := core.NewGraph()
	if _, err := unweighted.AddEdge("A", "B", 0); err != nil {
		t.Fatal(err)
	}
	negative := core.NewGraph(core.WithWeighted())
	if _, err := negative.AddEdge("A", "B", -1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		run  func() (step.Seq, error)
		want error
	}{
		{"nil graph", func() (step.Seq, error) { return algorithms.BFS(nil, "A", "D") }, algorithms.ErrNilGraph},
		{"unknown source", func() (step.Seq, error) { return algorithms.BFS(g, "X", "D") }, algorithms.ErrSourceNotFound},
		{"unknown target", func() (step.Seq, error) { return algorithms.Dijkstra(g, "A", "X") }, algorithms.ErrTargetNotFound},
		{"dijkstra unweighted", func() (step.Seq, error) { return algorithms.Dijkstra(unweighted, "A", "B") }, algorithms.ErrUnweightedGraph},
		{"dijkstra negative", func() (step.Seq, error) { return algorithms.Dijkstra(negative, "A", "B") }, algorithms.ErrNegativeWeight},
		{"astar negative", func() (step.Seq, error) { return algorithms.AStar(negative, "A", "B") }, algorithms.ErrNegativeWeight},
		{"greedy negative", func() (step.Seq, error) { return algorithms.GreedyBestFirst(negative, "A", "B") }, algorithms.ErrNegativeWeight},
		{"astar unknown heuristic", func() (step.Seq, error) {
			return algorithms.AStar(g, "A", "D", algorithms.WithHeuristic("nope"))
		}, algorithms.ErrUnknownHeuristic},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := tc.run()
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v; want %v", err, tc.want)
			}
			if seq != nil {
				t.Error("sequence non-nil alongside a constructor error")
			}
		})
	}
}

func TestSequencesAreRestartableAndDeterministic(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.Dijkstra(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}

	first := collect(t, seq)
	second := collect(t, seq)
	if !reflect.DeepEqual(first, second) {
		t.Error("two traversals of the same sequence differ")
	}

	for i, st := range first {
		if st.Number != i {
			t.Fatalf("step %d carries Number %d", i, st.Number)
		}
	}
}

func TestBFSFindsMinimumHops(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.BFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))

	want := []string{"A", "B", "D"}
	if !reflect.DeepEqual(last.Result.Path, want) {
		t.Errorf("path = %v; want %v", last.Result.Path, want)
	}
	if last.Result.PathCost != 6 {
		t.Errorf("cost = %g; want 6 (weights summed, not optimized)", last.Result.PathCost)
	}
}

func TestBFSUnreachable(t *testing.T) {
	g := diamond(t)
	if err := g.AddVertex("Z"); err != nil {
		t.Fatal(err)
	}
	seq, err := algorithms.BFS(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))
	if last.Result.Path != nil {
		t.Errorf("path = %v; want nil for unreachable target", last.Result.Path)
	}
	if last.Result.NodesVisited != 4 {
		t.Errorf("nodes visited = %d; want 4 (whole component)", last.Result.NodesVisited)
	}
}

func TestBFSSkipsBlockedVertices(t *testing.T) {
	g := diamond(t)
	if err := g.SetBlocked("B", true); err != nil {
		t.Fatal(err)
	}
	seq, err := algorithms.BFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))

	want := []string{"A", "C", "D"}
	if !reflect.DeepEqual(last.Result.Path, want) {
		t.Errorf("path = %v; want %v (B is a wall)", last.Result.Path, want)
	}
	for _, st := range collect(t, seq) {
		for _, id := range st.Visited {
			if id == "B" {
				t.Fatal("blocked vertex appeared in the visited list")
			}
		}
	}
}

func TestDFSFindsAValidPath(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.DFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))

	path := last.Result.Path
	if len(path) < 2 || path[0] != "A" || path[len(path)-1] != "D" {
		t.Fatalf("path = %v; want something from A to D", path)
	}
	// Every consecutive pair must be an existing edge.
	for i := 0; i+1 < len(path); i++ {
		if _, err := g.EdgeBetween(path[i], path[i+1]); err != nil {
			t.Errorf("path hop %s→%s is not an edge: %v", path[i], path[i+1], err)
		}
	}
}

func TestDijkstraOptimalCost(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.Dijkstra(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	steps := collect(t, seq)
	last := terminal(t, steps)

	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(last.Result.Path, want) {
		t.Errorf("path = %v; want %v", last.Result.Path, want)
	}
	if last.Result.PathCost != 4 {
		t.Errorf("cost = %g; want 4", last.Result.PathCost)
	}

	// The distance table on the terminal step is fully settled.
	wantDist := map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}
	for id, d := range wantDist {
		if got := last.Distances[id]; got != d {
			t.Errorf("dist[%s] = %g; want %g", id, got, d)
		}
	}
}

func TestDijkstraNeverReexpandsFinalized(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.Dijkstra(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for _, st := range collect(t, seq) {
		if st.Line != 6 { // pop-finalize events
			continue
		}
		if seen[st.CurrentNode] {
			t.Fatalf("vertex %q finalized twice", st.CurrentNode)
		}
		seen[st.CurrentNode] = true
	}
}

func TestAStarZeroMatchesDijkstraCost(t *testing.T) {
	g := diamond(t)

	dseq, err := algorithms.Dijkstra(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	aseq, err := algorithms.AStar(g, "A", "D", algorithms.WithHeuristic(algorithms.HeuristicZero))
	if err != nil {
		t.Fatal(err)
	}

	dlast := terminal(t, collect(t, dseq))
	alast := terminal(t, collect(t, aseq))
	if alast.Result.PathCost != dlast.Result.PathCost {
		t.Errorf("A*(zero) cost %g != Dijkstra cost %g", alast.Result.PathCost, dlast.Result.PathCost)
	}
	if !reflect.DeepEqual(alast.Result.Path, dlast.Result.Path) {
		t.Errorf("A*(zero) path %v != Dijkstra path %v", alast.Result.Path, dlast.Result.Path)
	}
}

func TestAStarEuclideanOptimal(t *testing.T) {
	// The diamond's coordinates are scaled so every straight-line estimate
	// undershoots the true remaining cost, keeping the heuristic admissible.
	g := diamond(t)
	seq, err := algorithms.AStar(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))
	if last.Result.PathCost != 4 {
		t.Errorf("cost = %g; want the optimal 4", last.Result.PathCost)
	}
}

func TestGreedyReachesTargetSuboptimally(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.GreedyBestFirst(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))

	path := last.Result.Path
	if len(path) == 0 || path[0] != "A" || path[len(path)-1] != "D" {
		t.Fatalf("path = %v; want A..D", path)
	}
	// h(B)=h(C) toward D, the tie breaks by insertion order, so greedy
	// commits to the heavy B-D edge and pays 6 where 4 was available.
	if last.Result.PathCost != 6 {
		t.Errorf("cost = %g; want the greedy 6", last.Result.PathCost)
	}
}

func TestBidirectionalBFSMeetsInTheMiddle(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.BidirectionalBFS(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	steps := collect(t, seq)
	last := terminal(t, steps)

	path := last.Result.Path
	if len(path) == 0 || path[0] != "A" || path[len(path)-1] != "D" {
		t.Fatalf("path = %v; want A..D", path)
	}
	for i := 0; i+1 < len(path); i++ {
		if _, err := g.EdgeBetween(path[i], path[i+1]); err != nil {
			t.Errorf("path hop %s→%s is not an edge: %v", path[i], path[i+1], err)
		}
	}

	// The backward wave must be visible as its own frontier class.
	sawBackward := false
	for _, st := range steps {
		for _, ns := range st.NodeStates {
			if ns == step.StateFrontierB {
				sawBackward = true
			}
		}
	}
	if !sawBackward {
		t.Error("no step ever classified a backward-frontier vertex")
	}
}

func TestBidirectionalBFSSourceEqualsTarget(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.BidirectionalBFS(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))
	if !reflect.DeepEqual(last.Result.Path, []string{"A"}) {
		t.Errorf("path = %v; want [A]", last.Result.Path)
	}
}

func TestBellmanFordNegativeEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"C", "B", -1},
		{"B", "D", 2},
		{"C", "D", 10},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	seq, err := algorithms.BellmanFord(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))

	want := []string{"A", "C", "B", "D"}
	if !reflect.DeepEqual(last.Result.Path, want) {
		t.Errorf("path = %v; want %v", last.Result.Path, want)
	}
	if last.Result.PathCost != 3 {
		t.Errorf("cost = %g; want 3", last.Result.PathCost)
	}
	if last.Result.NegativeCycle {
		t.Error("NegativeCycle set on a cycle-free graph")
	}
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1},
		{"B", "C", -2},
		{"C", "A", 0.5},
		{"C", "D", 1},
	} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	seq, err := algorithms.BellmanFord(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))

	if !last.Result.NegativeCycle {
		t.Fatal("negative cycle not reported")
	}
	if last.Result.Path != nil {
		t.Errorf("path = %v; want nil when shortest paths are undefined", last.Result.Path)
	}
}

func TestBellmanFordEarlyExit(t *testing.T) {
	// A 6-vertex path converges in the first round (arcs are scanned in
	// insertion order, which happens to run down the path), so only two
	// rounds are entered instead of five.
	g := core.NewGraph(core.WithWeighted())
	ids := []string{"A", "B", "C", "D", "E", "F"}
	for i := 1; i < len(ids); i++ {
		if _, err := g.AddEdge(ids[i-1], ids[i], 1); err != nil {
			t.Fatal(err)
		}
	}

	seq, err := algorithms.BellmanFord(g, "A", "F")
	if err != nil {
		t.Fatal(err)
	}

	rounds := map[int]bool{}
	for _, st := range collect(t, seq) {
		if r, ok := st.Overlay["round"].(int); ok && st.Line == 4 {
			rounds[r] = true
		}
	}
	if len(rounds) != 2 {
		t.Errorf("entered %d relaxation rounds; want 2 (round 1 relaxes, round 2 proves convergence)", len(rounds))
	}
}

func TestFloydWarshallShortestPath(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.FloydWarshall(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	steps := collect(t, seq)
	last := terminal(t, steps)

	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(last.Result.Path, want) {
		t.Errorf("path = %v; want %v", last.Result.Path, want)
	}
	if last.Result.PathCost != 4 {
		t.Errorf("cost = %g; want 4", last.Result.PathCost)
	}

	// The terminal matrix overlay holds the settled all-pairs distances.
	rows, ok := last.Overlay["matrix"].([]algorithms.MatrixRow)
	if !ok {
		t.Fatalf("matrix overlay missing: %T", last.Overlay["matrix"])
	}
	if len(rows) != 4 || len(rows[0].Values) != 4 {
		t.Fatalf("matrix shape = %dx%d; want 4x4", len(rows), len(rows[0].Values))
	}
	if rows[0].Label != "A" || rows[0].Values[3] != 4 {
		t.Errorf("dist[A][D] = %g; want 4", rows[0].Values[3])
	}
}

func TestFloydWarshallCondensedEmitsFewerSteps(t *testing.T) {
	g := diamond(t)
	full, err := algorithms.FloydWarshall(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	condensed, err := algorithms.FloydWarshall(g, "A", "D", algorithms.WithCondensedMatrix())
	if err != nil {
		t.Fatal(err)
	}

	nFull := len(collect(t, full))
	nCond := len(collect(t, condensed))
	if nCond >= nFull {
		t.Errorf("condensed run emitted %d steps, full run %d; want fewer", nCond, nFull)
	}

	lastFull := terminal(t, collect(t, full))
	lastCond := terminal(t, collect(t, condensed))
	if lastFull.Result.PathCost != lastCond.Result.PathCost {
		t.Error("condensed emission changed the computed result")
	}
}

func TestFloydWarshallDetectsNegativeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1},
		{"B", "C", -2},
		{"C", "A", 0.5},
	} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	seq, err := algorithms.FloydWarshall(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))
	if !last.Result.NegativeCycle || last.Result.Path != nil {
		t.Errorf("Result = %+v; want NegativeCycle with nil path", last.Result)
	}
}

func TestEarlyStopAbandonsSequence(t *testing.T) {
	g := diamond(t)
	seq, err := algorithms.Dijkstra(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}

	var got []step.Step
	seq(func(st step.Step) bool {
		got = append(got, st)

		return len(got) < 3
	})
	if len(got) != 3 {
		t.Errorf("pulled %d steps after stopping at 3", len(got))
	}
}

func TestUnreachableCostIsZeroNotInf(t *testing.T) {
	g := diamond(t)
	if err := g.AddVertex("Z"); err != nil {
		t.Fatal(err)
	}
	seq, err := algorithms.Dijkstra(g, "A", "Z")
	if err != nil {
		t.Fatal(err)
	}
	last := terminal(t, collect(t, seq))
	if last.Result.Path != nil {
		t.Errorf("path = %v; want nil", last.Result.Path)
	}
	if math.IsInf(last.Result.PathCost, 1) || last.Result.PathCost != 0 {
		t.Errorf("cost = %g; want 0 for a pathless result", last.Result.PathCost)
	}
}
