// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// Package builder provides deterministic graph constructors with geometric
// vertex positions, ready for heuristic-guided search.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig; no global state.
//   - Determinism: same inputs/options/seed and constructor order produce
//     identical graphs, positions included.
//   - Constructors return sentinel errors and never panic at runtime;
//     validation panics are confined to option constructors.
//
// Every constructor places vertices on a concrete 2-D layout (line, circle,
// lattice, seeded-random square) so Euclidean-family heuristics have honest
// coordinates to work with.
package builder
