// This file provides the mutable Builder scratch-pad executables use to
// assemble Steps without spelling out every field. Build copies all
// accumulated maps and slices, so a Builder may be reset and reused freely
// while previously built Steps stay frozen.

package step

import "fmt"

// Builder accumulates the fields of the next Step. The zero value is not
// ready for use; construct with NewBuilder.
type Builder struct {
	currentNode string
	currentEdge string
	nodeStates  map[string]NodeState
	edgeStates  map[string]EdgeState
	visited     []string
	frontier    []string
	distances   map[string]float64
	overlay     map[string]any
	line        int
	explanation string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()

	return b
}

// Reset clears every accumulated field so the Builder can describe the
// next event from scratch.
func (b *Builder) Reset() {
	b.currentNode = ""
	b.currentEdge = ""
	b.nodeStates = make(map[string]NodeState)
	b.edgeStates = make(map[string]EdgeState)
	b.visited = nil
	b.frontier = nil
	b.distances = nil
	b.overlay = make(map[string]any)
	b.line = 0
	b.explanation = ""
}

// SetCurrent records id as the vertex being expanded and classifies it
// as current.
func (b *Builder) SetCurrent(id string) {
	b.currentNode = id
	b.nodeStates[id] = StateCurrent
}

// SetVisited replaces the visited list (copied) and classifies each entry
// as visited unless a stronger classification was already recorded.
func (b *Builder) SetVisited(ids []string) {
	b.visited = append([]string(nil), ids...)
	for _, id := range ids {
		if _, ok := b.nodeStates[id]; !ok {
			b.nodeStates[id] = StateVisited
		}
	}
}

// SetFrontier replaces the frontier list (copied) and classifies each
// entry as frontier unless already classified.
func (b *Builder) SetFrontier(ids []string) {
	b.frontier = append([]string(nil), ids...)
	for _, id := range ids {
		if _, ok := b.nodeStates[id]; !ok {
			b.nodeStates[id] = StateFrontier
		}
	}
}

// MarkNode sets an explicit classification for one vertex, overriding any
// prior mark in this Builder.
func (b *Builder) MarkNode(id string, s NodeState) {
	b.nodeStates[id] = s
}

// RelaxEdge records an improving relaxation over edgeID. Exactly the edges
// marked this way are counted as relaxation events by the Recorder, so an
// executable must call it only when the tentative distance actually
// improved (or, for tree searches, when the edge discovers a new vertex).
func (b *Builder) RelaxEdge(edgeID string) {
	b.currentEdge = edgeID
	b.edgeStates[edgeID] = EdgeRelaxed
}

// IgnoreEdge records a non-improving examination of edgeID.
func (b *Builder) IgnoreEdge(edgeID string) {
	b.currentEdge = edgeID
	b.edgeStates[edgeID] = EdgeIgnored
}

// ChooseEdge marks edgeID as part of the reported path.
func (b *Builder) ChooseEdge(edgeID string) {
	b.edgeStates[edgeID] = EdgeChosen
}

// SetPath classifies every vertex of path as on-path (overriding prior
// marks; the terminal step highlights the result above all else).
func (b *Builder) SetPath(path []string) {
	for _, id := range path {
		b.nodeStates[id] = StateOnPath
	}
}

// SetDistances replaces the tentative-distance table (copied).
func (b *Builder) SetDistances(d map[string]float64) {
	cp := make(map[string]float64, len(d))
	for k, v := range d {
		cp[k] = v
	}
	b.distances = cp
}

// SetLine records the pseudocode line index for this step.
func (b *Builder) SetLine(i int) { b.line = i }

// Explainf formats the human-readable explanation for this step.
func (b *Builder) Explainf(format string, args ...any) {
	b.explanation = fmt.Sprintf(format, args...)
}

// Put stores an overlay entry. The value must not be mutated by the caller
// afterwards; pass freshly built snapshots.
func (b *Builder) Put(key string, value any) {
	b.overlay[key] = value
}

// Build produces the Step numbered n from the accumulated state.
// All maps and slices are copied; the Builder remains reusable.
func (b *Builder) Build(n int) Step {
	return b.build(n, nil)
}

// BuildFinal produces the terminal Step numbered n carrying the Result.
func (b *Builder) BuildFinal(n int, res Result) Step {
	return b.build(n, &res)
}

func (b *Builder) build(n int, res *Result) Step {
	ns := make(map[string]NodeState, len(b.nodeStates))
	for k, v := range b.nodeStates {
		ns[k] = v
	}
	es := make(map[string]EdgeState, len(b.edgeStates))
	for k, v := range b.edgeStates {
		es[k] = v
	}
	var dist map[string]float64
	if b.distances != nil {
		dist = make(map[string]float64, len(b.distances))
		for k, v := range b.distances {
			dist[k] = v
		}
	}
	ov := make(map[string]any, len(b.overlay))
	for k, v := range b.overlay {
		ov[k] = v
	}

	return Step{
		Number:      n,
		CurrentNode: b.currentNode,
		CurrentEdge: b.currentEdge,
		NodeStates:  ns,
		EdgeStates:  es,
		Visited:     append([]string(nil), b.visited...),
		Frontier:    append([]string(nil), b.frontier...),
		Distances:   dist,
		Overlay:     ov,
		Line:        b.line,
		Explanation: b.explanation,
		Result:      res,
		Final:       res != nil,
	}
}
