// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2-D orthogonal grid with 4-neighborhood.
//   - Vertex IDs use the fixed scheme "r,c" (row-major). This is a
//     deliberate exception to cfg.idFn: coordinates stay explicit, which
//     is what grid pathfinding scenarios want.
//   - Positions are the lattice points (c·spacing, r·spacing), so the
//     Euclidean, Manhattan and Octile heuristics are all exact-or-
//     admissible on the unweighted grid.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Edges to the right (r, c+1) and bottom (r+1, c) neighbors where they
//     exist, emitted row-major, Right before Bottom.
//   - Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, 0 otherwise.
//   - Sentinel errors only; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID renders the canonical vertex ID of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid on a
// lattice. Mark walls afterwards with core.Graph.SetBlocked.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertexAt(id, float64(c)*cfg.spacing, float64(r)*cfg.spacing); err != nil {
					return fmt.Errorf("%s: AddVertexAt(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)

				if c+1 < cols {
					v := GridID(r, c+1)
					w := cfg.edgeWeight(g.Weighted())
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
					}
				}
				if r+1 < rows {
					v := GridID(r+1, c)
					w := cfg.edgeWeight(g.Weighted())
					if _, err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
					}
				}
			}
		}

		return nil
	}
}
