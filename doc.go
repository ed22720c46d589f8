// Package pathlab is a step-driven laboratory for pathfinding algorithms:
// run them, pause them, rewind them, and race them against each other.
//
// 🚀 What is pathlab?
//
//	A thread-safe library that turns classic searches into inspectable
//	step sequences:
//		• Core primitives: positioned vertices, weighted edges, blocked cells
//		• Eight executables: BFS, DFS, Dijkstra, A*, Greedy Best-First,
//		  Bidirectional BFS, Bellman–Ford, Floyd–Warshall
//		• Four heuristics: Euclidean, Manhattan, Octile, Zero
//		• Playback: a history-buffered Stepper (Next/Prev/Rewind/Seek)
//		• Instrumentation: per-run Metrics and side-by-side comparison
//
// ✨ Why choose pathlab?
//
//   - Every algorithmic event is a full Step snapshot — no diff replay
//   - Deterministic by construction: sorted enumeration, stable tie-breaks
//   - "No path" and "negative cycle" are results, never errors
//   - Pure functions in, lazy restartable sequences out
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       — Graph, Vertex, Edge types & thread-safe primitives
//	step/       — the Step snapshot, Result payload and Builder
//	algorithms/ — the eight step-emitting executables + heuristics
//	catalog/    — the algorithm registry with display metadata
//	engine/     — Stepper playback, Recorder metrics, Compare verdicts
//	builder/    — deterministic graph generators with geometry
//	graphio/    — YAML graph documents (load/save)
//	cmd/pathlab — the CLI driver (list / run / compare)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	run Dijkstra A→D, step through every relaxation, rewind, then race
//	it against A* on the same square.
//
//	go get github.com/katalvlaran/pathlab
package pathlab
