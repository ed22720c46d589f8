// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never match strings.
//   - Implementations attach context via %w wrapping, keeping the sentinel
//     reachable for errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (Path needs n ≥ 2, Cycle n ≥ 3, Grid rows,cols ≥ 1, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor (for example, a nil Constructor value).
var ErrConstructFailed = errors.New("builder: construction failed")
