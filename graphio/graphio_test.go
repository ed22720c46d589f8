package graphio_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/graphio"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	add := func(id string, x, y float64) {
		if err := g.AddVertexAt(id, x, y); err != nil {
			t.Fatal(err)
		}
	}
	add("A", 0, 0)
	add("B", 1, 0)
	add("C", 1, 1)
	if err := g.SetBlocked("C", true); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("A", "B", 2.5); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("B", "C", 1, core.WithEdgeDirected(true)); err != nil {
		t.Fatal(err)
	}

	return g
}

func TestRoundTripIsLossless(t *testing.T) {
	g := fixture(t)

	var buf bytes.Buffer
	if err := graphio.Save(&buf, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := graphio.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if back.Weighted() != g.Weighted() || back.Directed() != g.Directed() {
		t.Error("mode flags lost")
	}
	if !reflect.DeepEqual(back.Vertices(), g.Vertices()) {
		t.Errorf("vertices = %v; want %v", back.Vertices(), g.Vertices())
	}
	for _, id := range g.Vertices() {
		want, _ := g.Vertex(id)
		got, err := back.Vertex(id)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("vertex %s = %+v; want %+v", id, got, want)
		}
	}
	// Edge IDs are regenerated, everything else must survive.
	wantEdges, gotEdges := g.Edges(), back.Edges()
	if len(wantEdges) != len(gotEdges) {
		t.Fatalf("edge count %d; want %d", len(gotEdges), len(wantEdges))
	}
	for i := range wantEdges {
		w, gg := wantEdges[i], gotEdges[i]
		if w.From != gg.From || w.To != gg.To || w.Weight != gg.Weight || w.Directed != gg.Directed {
			t.Errorf("edge %d = %+v; want %+v", i, gg, w)
		}
	}
}

func TestLoadDocument(t *testing.T) {
	doc := `
weighted: true
nodes:
  - id: A
  - id: B
    x: 3
    y: 4
    blocked: true
edges:
  - from: A
    to: B
    weight: 5
`
	g, err := graphio.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v, err := g.Vertex("B")
	if err != nil {
		t.Fatal(err)
	}
	if v.X != 3 || v.Y != 4 || !v.Blocked {
		t.Errorf("B = %+v", v)
	}
	e, err := g.EdgeBetween("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if e.Weight != 5 || e.Directed {
		t.Errorf("edge = %+v", e)
	}
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\t:::"},
		{"empty node id", "nodes:\n  - id: \"\"\n"},
		{"weight on unweighted", "nodes:\n  - id: A\n  - id: B\nedges:\n  - from: A\n    to: B\n    weight: 3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := graphio.Load(strings.NewReader(tc.doc)); err == nil {
				t.Error("invalid document accepted")
			}
		})
	}
}

func TestSaveNilGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := graphio.Save(&buf, nil); !errors.Is(err, graphio.ErrNilGraph) {
		t.Errorf("Save(nil) = %v; want ErrNilGraph", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	g := fixture(t)
	path := t.TempDir() + "/graph.yaml"

	if err := graphio.SaveFile(path, g); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	back, err := graphio.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if back.VertexCount() != g.VertexCount() || back.EdgeCount() != g.EdgeCount() {
		t.Errorf("V=%d E=%d; want %d, %d", back.VertexCount(), back.EdgeCount(), g.VertexCount(), g.EdgeCount())
	}
}
