// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Requires cfg.rng (WithSeed / WithRand), else ErrNeedRandSource.
//   - Vertices 0..n-1 get uniformly random positions inside a square whose
//     side grows with √n, keeping expected density independent of n.
//   - Each unordered pair (i, j), i < j, receives an edge with probability
//     p, scanned in lexicographic order.
//
// Determinism:
//   - Fixed seed ⇒ identical positions, topology and weights. Position
//     draws happen before edge draws, so the RNG consumption order is part
//     of the contract.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minSparseNodes     = 1
)

// RandomSparse returns a Constructor that builds a seeded Erdős–Rényi
// style sparse graph with random geometric positions.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := math.Sqrt(float64(n)) * cfg.spacing
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			x := cfg.rng.Float64() * side
			y := cfg.rng.Float64() * side
			if err := g.AddVertexAt(id, x, y); err != nil {
				return fmt.Errorf("%s: AddVertexAt(%s): %w", methodRandomSparse, id, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.edgeWeight(g.Weighted())
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
