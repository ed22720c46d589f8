// Package graphio reads and writes core graphs as YAML documents.
//
// The document captures every observable field of the graph model: mode
// flags, vertex positions, blocked markers, edge weights and per-edge
// directedness overrides, so Load(Save(g)) reproduces g exactly. Edge IDs
// are regenerated on load; they are storage artifacts, not document
// content.
//
// Format:
//
//	directed: false
//	weighted: true
//	nodes:
//	  - id: A
//	    x: 0
//	    y: 0
//	  - id: B
//	    x: 1
//	    y: 0
//	    blocked: true
//	edges:
//	  - from: A
//	    to: B
//	    weight: 2.5
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/core"
)

// ErrNilGraph is returned by Save for a nil graph.
var ErrNilGraph = errors.New("graphio: graph is nil")

// Document is the YAML shape of a stored graph.
type Document struct {
	Directed   bool      `yaml:"directed,omitempty"`
	Weighted   bool      `yaml:"weighted,omitempty"`
	Loops      bool      `yaml:"loops,omitempty"`
	MultiEdges bool      `yaml:"multi_edges,omitempty"`
	Nodes      []NodeDoc `yaml:"nodes"`
	Edges      []EdgeDoc `yaml:"edges,omitempty"`
}

// NodeDoc is one stored vertex.
type NodeDoc struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Blocked bool    `yaml:"blocked,omitempty"`
}

// EdgeDoc is one stored edge. Directed is a pointer so that "absent" means
// "follow the graph default" while an explicit value overrides it.
type EdgeDoc struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Weight   float64 `yaml:"weight,omitempty"`
	Directed *bool   `yaml:"directed,omitempty"`
}

// Encode converts a graph into its Document form, nodes and edges in the
// graph's deterministic enumeration order.
func Encode(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	doc := &Document{
		Directed:   g.Directed(),
		Weighted:   g.Weighted(),
		Loops:      g.AllowsLoops(),
		MultiEdges: g.AllowsMultiEdges(),
	}

	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("graphio: encode vertex %q: %w", id, err)
		}
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: v.ID, X: v.X, Y: v.Y, Blocked: v.Blocked})
	}

	for _, e := range g.Edges() {
		ed := EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
		if e.Directed != g.Directed() {
			directed := e.Directed
			ed.Directed = &directed
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return doc, nil
}

// Decode builds a graph from its Document form. Edges are added in
// document order, so regenerated edge IDs are deterministic.
func Decode(doc *Document) (*core.Graph, error) {
	var gopts []core.GraphOption
	gopts = append(gopts, core.WithDirected(doc.Directed))
	if doc.Weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	if doc.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	if doc.MultiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)

	for _, nd := range doc.Nodes {
		if err := g.AddVertexAt(nd.ID, nd.X, nd.Y); err != nil {
			return nil, fmt.Errorf("graphio: node %q: %w", nd.ID, err)
		}
		if nd.Blocked {
			if err := g.SetBlocked(nd.ID, true); err != nil {
				return nil, fmt.Errorf("graphio: node %q: %w", nd.ID, err)
			}
		}
	}

	for _, ed := range doc.Edges {
		var eopts []core.EdgeOption
		if ed.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*ed.Directed))
		}
		if _, err := g.AddEdge(ed.From, ed.To, ed.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("graphio: edge %s→%s: %w", ed.From, ed.To, err)
		}
	}

	return g, nil
}

// Save writes the graph to w as YAML.
func Save(w io.Writer, g *core.Graph) error {
	doc, err := Encode(g)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Load reads a YAML graph document from r.
func Load(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return Decode(&doc)
}

// SaveFile writes the graph to path, creating or truncating the file.
func SaveFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Save(f, g)
}

// LoadFile reads a YAML graph document from path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Load(f)
}
