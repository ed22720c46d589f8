// This file implements the Graph methods: vertex management, edge
// management, and adjacency queries. All accessors return copies so a
// caller can never mutate the shared Graph through a returned value.

package core

import (
	"fmt"
	"sort"
)

// Weighted reports whether the graph accepts non-zero edge weights.
// Complexity: O(1)
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports the default directedness of edges in this graph.
// Complexity: O(1)
func (g *Graph) Directed() bool { return g.directed }

// AllowsLoops reports whether self-loops are permitted.
// Complexity: O(1)
func (g *Graph) AllowsLoops() bool { return g.allowLoops }

// AllowsMultiEdges reports whether parallel edges are permitted.
// Complexity: O(1)
func (g *Graph) AllowsMultiEdges() bool { return g.allowMulti }

// AddVertex inserts a vertex with the given ID at position (0,0).
// Adding an existing ID is a no-op (the stored vertex is kept unchanged).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	return g.AddVertexAt(id, 0, 0)
}

// AddVertexAt inserts a vertex with the given ID and planar position.
// If the vertex already exists its position is updated; the blocked flag is
// preserved. Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertexAt(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, ok := g.vertices[id]; ok {
		v.X, v.Y = x, y

		return nil
	}
	g.vertices[id] = &Vertex{ID: id, X: x, Y: y}

	return nil
}

// SetBlocked marks or unmarks a vertex as impassable.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1)
func (g *Graph) SetBlocked(id string, blocked bool) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetBlocked(%q): %w", id, ErrVertexNotFound)
	}
	v.Blocked = blocked

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
// Returns ErrVertexNotFound if absent.
// Complexity: O(1)
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// Vertices returns all vertex IDs in lexicographic order.
// The sorted order is the determinism anchor for every executable that
// iterates the whole vertex set (Bellman-Ford, Floyd-Warshall).
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge inserts an edge from→to with the given weight and returns the new
// edge ID. Missing endpoints are created automatically (position (0,0)).
//
// Validation:
//   - non-zero weight on an unweighted graph → ErrBadWeight
//   - from == to with loops disabled → ErrLoopNotAllowed
//   - parallel edge with multi-edges disabled → ErrMultiEdgeNotAllowed
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrBadWeight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrLoopNotAllowed)
	}

	// Ensure both endpoints exist before touching adjacency.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if !g.HasVertex(to) {
		if err := g.AddVertex(to); err != nil {
			return "", err
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.adjacencyHasLocked(from, to) {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.nextEdgeSeq++
	e := &Edge{
		ID:       fmt.Sprintf("e%06d", g.nextEdgeSeq),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	g.linkLocked(from, to, e.ID)
	if !e.Directed {
		g.linkLocked(to, from, e.ID)
	}

	return e.ID, nil
}

// Edge returns a copy of the edge with the given ID.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1)
func (g *Graph) Edge(edgeID string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return Edge{}, fmt.Errorf("Edge(%q): %w", edgeID, ErrEdgeNotFound)
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by edge ID (insertion order,
// since IDs are zero-padded sequence numbers).
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of stored edges (an undirected edge counts once).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge is traversable from→to.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.adjacencyHasLocked(from, to)
}

// EdgeBetween returns a copy of the lowest-ID edge traversable from→to.
// Returns ErrEdgeNotFound when no such edge exists. With multi-edges the
// lowest ID is the earliest inserted, which keeps path-cost reporting
// deterministic.
// Complexity: O(k log k) for k parallel edges
func (g *Graph) EdgeBetween(from, to string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	inner, ok := g.adjacencyList[from][to]
	if !ok || len(inner) == 0 {
		return Edge{}, fmt.Errorf("EdgeBetween(%q,%q): %w", from, to, ErrEdgeNotFound)
	}
	ids := make([]string, 0, len(inner))
	for eid := range inner {
		ids = append(ids, eid)
	}
	sort.Strings(ids)

	return *g.edges[ids[0]], nil
}

// Neighbors returns copies of all edges traversable out of id, sorted by
// (neighbor ID, edge ID). For an undirected edge stored as To→id the copy
// is returned as-is; callers derive the far endpoint from both fields.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	var out []Edge
	for _, inner := range g.adjacencyList[id] {
		for eid := range inner {
			out = append(out, *g.edges[eid])
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ni, nj := out[i].OtherEnd(id), out[j].OtherEnd(id)
		if ni != nj {
			return ni < nj
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

// NeighborIDs returns the distinct IDs reachable from id in one hop,
// in lexicographic order.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	var out []string
	for _, e := range edges {
		n := e.OtherEnd(id)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// OtherEnd returns the endpoint of e opposite to id.
// For a self-loop both endpoints coincide and id itself is returned.
func (e Edge) OtherEnd(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// PathCost sums edge weights along a path of adjacent vertex IDs.
// Returns ErrEdgeNotFound as soon as two consecutive IDs are not adjacent.
// Complexity: O(len(path))
func (g *Graph) PathCost(path []string) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, err := g.EdgeBetween(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("PathCost: hop %q→%q: %w", path[i], path[i+1], ErrEdgeNotFound)
		}
		total += e.Weight
	}

	return total, nil
}

// linkLocked records eid in the from→to adjacency cell.
// Caller must hold muEdgeAdj.
func (g *Graph) linkLocked(from, to, eid string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
}

// adjacencyHasLocked reports a non-empty from→to adjacency cell.
// Caller must hold muEdgeAdj (read or write).
func (g *Graph) adjacencyHasLocked(from, to string) bool {
	inner, ok := g.adjacencyList[from][to]

	return ok && len(inner) > 0
}
