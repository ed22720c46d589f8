package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathlab/core"
)

func TestAddVertexIdempotentKeepsBlocked(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertexAt("A", 1, 2); err != nil {
		t.Fatalf("AddVertexAt: %v", err)
	}
	if err := g.SetBlocked("A", true); err != nil {
		t.Fatalf("SetBlocked: %v", err)
	}
	// Re-adding updates the position but must keep the blocked flag.
	if err := g.AddVertexAt("A", 3, 4); err != nil {
		t.Fatalf("AddVertexAt(update): %v", err)
	}
	v, err := g.Vertex("A")
	if err != nil {
		t.Fatalf("Vertex: %v", err)
	}
	if v.X != 3 || v.Y != 4 {
		t.Errorf("position = (%g,%g); want (3,4)", v.X, v.Y)
	}
	if !v.Blocked {
		t.Error("Blocked flag lost on position update")
	}
}

func TestAddVertexEmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("AddVertex(\"\") = %v; want ErrEmptyVertexID", err)
	}
}

func TestAddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	id, err := g.AddEdge("A", "B", 2.5)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Fatal("endpoints not auto-created")
	}
	e, err := g.Edge(id)
	if err != nil {
		t.Fatalf("Edge(%q): %v", id, err)
	}
	if e.Weight != 2.5 || e.From != "A" || e.To != "B" {
		t.Errorf("edge = %+v", e)
	}
}

func TestAddEdgeValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []core.GraphOption
		from string
		to   string
		w    float64
		want error
	}{
		{"weight on unweighted", nil, "A", "B", 1, core.ErrBadWeight},
		{"loop disabled", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"empty endpoint", nil, "", "B", 0, core.ErrEmptyVertexID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			if _, err := g.AddEdge(tc.from, tc.to, tc.w); !errors.Is(err, tc.want) {
				t.Errorf("AddEdge = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestMultiEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("first AddEdge: %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge = %v; want ErrMultiEdgeNotAllowed", err)
	}

	multi := core.NewGraph(core.WithMultiEdges())
	if _, err := multi.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("first AddEdge: %v", err)
	}
	if _, err := multi.AddEdge("A", "B", 0); err != nil {
		t.Errorf("parallel edge with WithMultiEdges: %v", err)
	}
}

func TestVerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	got := g.Vertices()
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertices() = %v; want %v", got, want)
		}
	}
}

func TestNeighborsUndirectedAndSorted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "B", "C", 1)
	mustEdge(t, g, "B", "A", 2)

	edges, err := g.Neighbors("B")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("len(Neighbors) = %d; want 2", len(edges))
	}
	// Sorted by far endpoint: A before C.
	if edges[0].OtherEnd("B") != "A" || edges[1].OtherEnd("B") != "C" {
		t.Errorf("neighbor order = %s, %s; want A, C",
			edges[0].OtherEnd("B"), edges[1].OtherEnd("B"))
	}

	// Undirected edges are traversable from both endpoints.
	back, err := g.Neighbors("A")
	if err != nil {
		t.Fatalf("Neighbors(A): %v", err)
	}
	if len(back) != 1 || back[0].OtherEnd("A") != "B" {
		t.Errorf("Neighbors(A) = %+v; want the single edge to B", back)
	}
}

func TestDirectedEdgesAreOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)

	if !g.HasEdge("A", "B") {
		t.Error("A→B missing")
	}
	if g.HasEdge("B", "A") {
		t.Error("directed edge traversable backwards")
	}
}

func TestPathCost(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 2.5)

	cost, err := g.PathCost([]string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("PathCost: %v", err)
	}
	if cost != 3.5 {
		t.Errorf("PathCost = %g; want 3.5", cost)
	}

	if _, err := g.PathCost([]string{"A", "C"}); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("PathCost over missing edge = %v; want ErrEdgeNotFound", err)
	}
}

func TestEdgeBetweenPicksLowestID(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	first, _ := g.AddEdge("A", "B", 7)
	if _, err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatalf("second AddEdge: %v", err)
	}

	e, err := g.EdgeBetween("A", "B")
	if err != nil {
		t.Fatalf("EdgeBetween: %v", err)
	}
	if e.ID != first {
		t.Errorf("EdgeBetween picked %q; want earliest edge %q", e.ID, first)
	}
}

func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) {
	t.Helper()
	if _, err := g.AddEdge(from, to, w); err != nil {
		t.Fatalf("AddEdge(%s,%s): %v", from, to, err)
	}
}
