// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   - idFn     = decimalID            ("0","1","2",...)
//   - rng      = nil                  (pure unless seeded)
//   - weightFn = constant 1.0
//   - spacing  = 1.0                  (geometric unit between neighbors)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value, so constructors cannot mutate the caller's configuration.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// Weight generator for edges; consulted only on weighted graphs.
	weightFn func(*rand.Rand) float64
	// Geometric distance between adjacent vertices in generated layouts.
	spacing float64
}

const (
	defaultSpacing     = 1.0
	defaultConstWeight = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeWeight resolves the weight policy for one edge: the generator on
// weighted graphs, zero otherwise.
func (cfg builderConfig) edgeWeight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
