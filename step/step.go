// Package step defines the Step snapshot type: the fundamental unit of
// observability emitted by every pathfinding executable.
//
// A Step is a frozen-in-time picture of one algorithmic event: which
// vertices are visited / on the frontier / current, which edges were just
// relaxed or ignored, the live distance table, the pseudocode line being
// executed, and a human-readable explanation. Executables are the only
// writers; the playback engine and any renderer are pure readers.
//
// Steps are full snapshots, not diffs: replaying steps 0..k is never
// required to reconstruct the state at k, the Step at k already carries it.
// This trades memory for simplicity, which is also the trade-off the
// history buffer in the engine makes.
package step

// NodeState classifies a vertex for display purposes. Executables track
// their own visited/distance structures internally; the state recorded in a
// Step is reporting, never algorithm input.
type NodeState string

// Vertex classifications.
const (
	StateUnvisited NodeState = "unvisited"
	StateFrontier  NodeState = "frontier"
	// StateFrontierB marks the backward frontier of a bidirectional search.
	StateFrontierB NodeState = "frontier-b"
	StateVisited   NodeState = "visited"
	StateCurrent   NodeState = "current"
	StateOnPath    NodeState = "on-path"
	StateBlocked   NodeState = "blocked"
	StateSource    NodeState = "source"
	StateTarget    NodeState = "target"
)

// EdgeState classifies an edge for display purposes.
type EdgeState string

// Edge classifications.
const (
	EdgeDefault EdgeState = "default"
	EdgeRelaxed EdgeState = "relaxed"
	EdgeChosen  EdgeState = "chosen"
	EdgeIgnored EdgeState = "ignored"
)

// Result is the terminal payload carried by the last Step of a run,
// whether the search succeeded, exhausted its frontier, or detected a
// negative cycle. "No path found" is a normal Result with a nil Path,
// never an error.
type Result struct {
	// Path is the ordered vertex sequence source..target, or nil when the
	// target is unreachable (or shortest paths are undefined).
	Path []string

	// PathCost is the sum of edge weights along Path (0 when Path is nil).
	PathCost float64

	// NodesVisited is the number of vertices finalized during the run.
	NodesVisited int

	// EdgesRelaxed counts distinct improving relaxation events.
	// A re-relaxation in a later Bellman-Ford round counts again; a scan
	// that does not improve the tentative distance never counts.
	EdgesRelaxed int

	// NegativeCycle is set when Bellman-Ford's detector pass proves that
	// shortest paths are undefined. Path is nil in that case.
	NegativeCycle bool
}

// Step is an immutable snapshot of algorithm progress. It is created
// exactly once by an executable and never mutated afterward; ownership
// transfers to whoever pulls the sequence.
type Step struct {
	// Number is the 0-based index of this step within its run.
	Number int

	// CurrentNode is the vertex being expanded right now ("" if none).
	CurrentNode string

	// CurrentEdge is the edge being examined right now ("" if none).
	CurrentEdge string

	// NodeStates maps vertex ID → display classification.
	NodeStates map[string]NodeState

	// EdgeStates maps edge ID → display classification.
	EdgeStates map[string]EdgeState

	// Visited lists vertices finalized so far, in finalization order.
	Visited []string

	// Frontier lists vertices currently queued for expansion.
	Frontier []string

	// Distances is the current tentative-distance table (weighted searches).
	Distances map[string]float64

	// Overlay carries algorithm-specific extras: queue contents, g/h/f
	// score rows, the Floyd-Warshall matrix, the Bellman-Ford round, etc.
	Overlay map[string]any

	// Line is the 0-based index into the algorithm's pseudocode listing.
	Line int

	// Explanation is the human-readable "why" for this step.
	Explanation string

	// Result is non-nil exactly once per run, on the terminal step.
	Result *Result

	// Final marks the terminal step.
	Final bool
}

// Seq is a lazy, finite, forward-only sequence of Steps. Ranging over a
// Seq replays the algorithm from the start: executables close over no
// state between invocations, so the same Seq is restartable and
// deterministic. Stopping early (yield returning false) abandons the run
// cooperatively.
type Seq func(yield func(Step) bool)
