// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// api.go - thin public entry-point for the builder package.
//
// Contract:
//   - BuildGraph(gopts, bopts, cons...) creates g, resolves cfg, applies
//     constructors in order, and stops on the first error.
//   - All topology factories live in impl_*.go and return Constructor
//     closures over their parameters.
//   - Determinism: same inputs/options/seed and constructor order produce
//     identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// Constructor applies one deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and never panic at runtime.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. The first constructor error is wrapped and returned; no partial
// cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
