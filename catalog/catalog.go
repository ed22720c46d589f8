// Package catalog is the registry of step-emitting pathfinding algorithms.
//
// Each algorithm is described by a static Descriptor: identity, display
// metadata, capability flags, the pseudocode listing that Step.Line indexes
// into, and the constructor. The eight built-ins register themselves at
// package init; callers may add their own via Register as long as the key
// is unique. List preserves registration order, so the built-ins always
// appear in their canonical sequence.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/pathlab/algorithms"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

var (
	// ErrUnknownAlgorithm is returned by Get for an unregistered key.
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

	// ErrDuplicateAlgorithm is returned by Register when the key is taken.
	ErrDuplicateAlgorithm = errors.New("catalog: algorithm already registered")

	// ErrNilConstructor is returned by Register for a Descriptor without New.
	ErrNilConstructor = errors.New("catalog: descriptor has no constructor")
)

// Constructor builds the lazy step sequence for one run. It reports
// configuration problems before the first step is produced.
type Constructor func(g *core.Graph, source, target string, opts ...algorithms.Option) (step.Seq, error)

// Descriptor is the static record describing one registered algorithm.
type Descriptor struct {
	// Key is the unique registry identifier, e.g. "dijkstra".
	Key string
	// Label is the human-readable display name.
	Label string
	// Tags classify the algorithm for filtering ("weighted", "heuristic", ...).
	Tags []string
	// TimeComplexity and SpaceComplexity are display strings, e.g. "O((V+E) log V)".
	TimeComplexity  string
	SpaceComplexity string
	// Description is a one-paragraph summary.
	Description string
	// SupportsNegative reports whether negative edge weights are accepted.
	SupportsNegative bool
	// AllPairs reports whether the algorithm computes all-pairs distances.
	AllPairs bool
	// HasHeuristic reports whether WithHeuristic influences the run.
	HasHeuristic bool
	// Pseudocode is the listing that Step.Line indexes into.
	Pseudocode []string
	// New constructs the step sequence.
	New Constructor
}

var (
	mu      sync.RWMutex
	byKey   = make(map[string]Descriptor)
	ordered []string
)

// Register adds a Descriptor to the registry. The key must be unique and
// the constructor non-nil.
func Register(d Descriptor) error {
	if d.New == nil {
		return fmt.Errorf("%w: %q", ErrNilConstructor, d.Key)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byKey[d.Key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, d.Key)
	}
	byKey[d.Key] = d
	ordered = append(ordered, d.Key)

	return nil
}

// Get returns the Descriptor registered under key.
func Get(key string) (Descriptor, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := byKey[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
	}

	return d, nil
}

// List returns all Descriptors in registration order.
func List() []Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Descriptor, len(ordered))
	for i, key := range ordered {
		out[i] = byKey[key]
	}

	return out
}

// mustRegister panics on a registration failure. Built-in registration
// only; a failure here is a programmer error, not a runtime condition.
func mustRegister(d Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}
