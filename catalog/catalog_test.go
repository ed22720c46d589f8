package catalog_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathlab/algorithms"
	"github.com/katalvlaran/pathlab/catalog"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

func TestBuiltinsListedInRegistrationOrder(t *testing.T) {
	want := []string{"bfs", "dfs", "dijkstra", "astar", "greedy", "bidi-bfs", "bellman-ford", "floyd-warshall"}

	ds := catalog.List()
	if len(ds) < len(want) {
		t.Fatalf("List() returned %d descriptors; want at least %d", len(ds), len(want))
	}
	for i, key := range want {
		if ds[i].Key != key {
			t.Errorf("List()[%d].Key = %q; want %q", i, ds[i].Key, key)
		}
	}
}

func TestDescriptorsAreComplete(t *testing.T) {
	for _, d := range catalog.List() {
		if d.Label == "" || d.Description == "" || d.TimeComplexity == "" || d.SpaceComplexity == "" {
			t.Errorf("%s: descriptor has empty display fields: %+v", d.Key, d)
		}
		if len(d.Pseudocode) == 0 {
			t.Errorf("%s: no pseudocode listing", d.Key)
		}
		if d.New == nil {
			t.Errorf("%s: nil constructor", d.Key)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := catalog.Get("simulated-annealing"); !errors.Is(err, catalog.ErrUnknownAlgorithm) {
		t.Errorf("Get(unknown) = %v; want ErrUnknownAlgorithm", err)
	}
}

func TestRegisterRejectsDuplicatesAndNilConstructor(t *testing.T) {
	ctor := func(g *core.Graph, source, target string, opts ...algorithms.Option) (step.Seq, error) {
		return algorithms.BFS(g, source, target, opts...)
	}

	if err := catalog.Register(catalog.Descriptor{Key: "bfs", New: ctor}); !errors.Is(err, catalog.ErrDuplicateAlgorithm) {
		t.Errorf("duplicate Register = %v; want ErrDuplicateAlgorithm", err)
	}
	if err := catalog.Register(catalog.Descriptor{Key: "broken"}); !errors.Is(err, catalog.ErrNilConstructor) {
		t.Errorf("nil-constructor Register = %v; want ErrNilConstructor", err)
	}
}

func TestRegisteredConstructorRuns(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if _, err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatal(err)
	}

	d, err := catalog.Get("dijkstra")
	if err != nil {
		t.Fatal(err)
	}
	seq, err := d.New(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}

	var last step.Step
	seq(func(st step.Step) bool {
		last = st

		return true
	})
	if !last.Final || last.Result == nil || last.Result.PathCost != 1 {
		t.Errorf("terminal = %+v; want final result with cost 1", last)
	}

	// Pseudocode lines referenced by steps stay within the listing.
	seq(func(st step.Step) bool {
		if st.Line < 0 || st.Line >= len(d.Pseudocode) {
			t.Errorf("step %d references pseudocode line %d of %d", st.Number, st.Line, len(d.Pseudocode))
		}

		return true
	})
}
