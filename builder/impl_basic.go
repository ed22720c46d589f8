// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_basic.go - Path, Cycle, Complete and Star constructors.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order; Star uses
//     the fixed ID "Center" for its hub.
//   - Layouts: Path on a horizontal line at cfg.spacing intervals; Cycle,
//     Complete and Star leaves on a circle whose circumference keeps
//     adjacent vertices cfg.spacing apart; Star's center at the origin.
//   - Edge emission order is stable and documented per constructor.
//   - Weight policy: cfg.weightFn(cfg.rng) on weighted graphs, 0 otherwise.
//   - Sentinel errors only; never panics at runtime.
//
// Determinism:
//   - Deterministic IDs, positions, emission order and weights for a fixed
//     config.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2

	// StarCenterID is the fixed hub vertex ID used by Star.
	StarCenterID = "Center"
)

// Path returns a Constructor that builds the simple path P_n laid out on a
// horizontal line. Edges are emitted (i-1)→i for i = 1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertexAt(id, float64(i)*cfg.spacing, 0); err != nil {
				return fmt.Errorf("%s: AddVertexAt(%s): %w", methodPath, id, err)
			}
		}

		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.edgeWeight(g.Weighted())
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n on a
// circle. Edges are emitted i→(i+1 mod n) for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		if err := placeOnCircle(g, cfg, n, 0); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.edgeWeight(g.Weighted())
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n on a
// circle. Edges are emitted in lexicographic (i, j) order with i < j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		if err := placeOnCircle(g, cfg, n, 0); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.edgeWeight(g.Weighted())
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with hub StarCenterID at
// the origin and n-1 leaves on a circle. Spokes are emitted in ascending
// leaf order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertexAt(StarCenterID, 0, 0); err != nil {
			return fmt.Errorf("%s: AddVertexAt(%s): %w", methodStar, StarCenterID, err)
		}
		leaves := n - 1
		if err := placeOnCircle(g, cfg, leaves, 0); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}

		for i := 0; i < leaves; i++ {
			leaf := cfg.idFn(i)
			w := cfg.edgeWeight(g.Weighted())
			if _, err := g.AddEdge(StarCenterID, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodStar, StarCenterID, leaf, w, err)
			}
		}

		return nil
	}
}

// placeOnCircle adds n vertices evenly spaced on a circle centered at the
// origin, sized so that adjacent vertices sit cfg.spacing apart along the
// circumference. A single vertex lands on the origin.
func placeOnCircle(g *core.Graph, cfg builderConfig, n int, phase float64) error {
	radius := float64(n) * cfg.spacing / (2 * math.Pi)
	for i := 0; i < n; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(n)
		id := cfg.idFn(i)
		if err := g.AddVertexAt(id, radius*math.Cos(angle), radius*math.Sin(angle)); err != nil {
			return fmt.Errorf("AddVertexAt(%s): %w", id, err)
		}
	}

	return nil
}
