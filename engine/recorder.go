package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathlab/algorithms"
	"github.com/katalvlaran/pathlab/catalog"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/step"
)

// Metrics is the instrumented summary of one completed run.
type Metrics struct {
	// RunID uniquely identifies this run.
	RunID uuid.UUID
	// AlgorithmKey and Label identify the algorithm from the catalog.
	AlgorithmKey string
	Label        string
	// Source and Target are the requested endpoints.
	Source string
	Target string
	// Heuristic is the estimator key, empty for algorithms that take none.
	Heuristic string

	// NodesVisited counts vertices the run committed to (visited set size).
	NodesVisited int
	// EdgesRelaxed counts distinct improving relaxation events.
	EdgesRelaxed int
	// PathLength is the edge count of the found path, 0 when none.
	PathLength int
	// PathCost is the total weight of the found path.
	PathCost float64
	// PathFound reports whether a path was reported at all.
	PathFound bool
	// NegativeCycle reports a negative-cycle terminal condition.
	NegativeCycle bool

	// TotalSteps is the full length of the step sequence.
	TotalSteps int
	// PeakBuffered is the Stepper buffer length at exhaustion; with a
	// single forward drive it equals TotalSteps.
	PeakBuffered int
	// Duration is the wall time of the drive loop alone, not of Start.
	Duration time.Duration
}

// Recorder runs one algorithm to completion and folds its step stream into
// Metrics. Configuration problems surface at Start, before any step is
// produced; a started Recorder is single-use.
type Recorder struct {
	stepper *Stepper
	metrics Metrics
	started bool
	done    bool
}

// NewRecorder returns an idle Recorder with a fresh run ID.
func NewRecorder() *Recorder {
	return &Recorder{metrics: Metrics{RunID: uuid.New()}}
}

// Start resolves key in the catalog and constructs the run. Constructor
// errors (unknown algorithm, bad endpoints, negative weights where
// forbidden, unknown heuristic) are returned here.
func (r *Recorder) Start(key string, g *core.Graph, source, target string, opts ...algorithms.Option) error {
	if r.started {
		return ErrAlreadyStarted
	}

	desc, err := catalog.Get(key)
	if err != nil {
		return err
	}
	seq, err := desc.New(g, source, target, opts...)
	if err != nil {
		return fmt.Errorf("engine: start %q: %w", key, err)
	}
	stepper, err := NewStepper(seq)
	if err != nil {
		return err
	}

	o := algorithms.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r.stepper = stepper
	r.metrics.AlgorithmKey = desc.Key
	r.metrics.Label = desc.Label
	r.metrics.Source = source
	r.metrics.Target = target
	if desc.HasHeuristic {
		r.metrics.Heuristic = string(o.Heuristic)
	}
	r.started = true

	return nil
}

// Stepper exposes the underlying playback head, for callers that want to
// inspect steps interactively before (or instead of) RunToCompletion.
func (r *Recorder) Stepper() (*Stepper, error) {
	if !r.started {
		return nil, ErrNotStarted
	}

	return r.stepper, nil
}

// RunToCompletion drives the run to its terminal step and returns the
// folded Metrics. Only the drive loop is timed. Calling it again returns
// the same Metrics without re-driving.
func (r *Recorder) RunToCompletion() (Metrics, error) {
	if !r.started {
		return Metrics{}, ErrNotStarted
	}
	if r.done {
		return r.metrics, nil
	}

	begin := time.Now()
	last := r.stepper.RunToEnd()
	r.metrics.Duration = time.Since(begin)

	r.metrics.TotalSteps = r.stepper.Len()
	r.metrics.PeakBuffered = r.stepper.Len()
	r.fold(last)
	r.done = true

	return r.metrics, nil
}

// Metrics returns the folded metrics of a completed run.
func (r *Recorder) Metrics() (Metrics, error) {
	if !r.done {
		return Metrics{}, ErrNotStarted
	}

	return r.metrics, nil
}

// fold extracts the counters from the terminal step. The terminal Result
// is authoritative; FoldTransitions exists to cross-check it against the
// per-step transition events.
func (r *Recorder) fold(last step.Step) {
	if last.Result == nil {
		return
	}
	res := last.Result
	r.metrics.NodesVisited = res.NodesVisited
	r.metrics.EdgesRelaxed = res.EdgesRelaxed
	r.metrics.NegativeCycle = res.NegativeCycle
	if len(res.Path) > 0 {
		r.metrics.PathFound = true
		r.metrics.PathLength = len(res.Path) - 1
		r.metrics.PathCost = res.PathCost
	}
}

// FoldTransitions recomputes the visit and relaxation counters from the
// buffered step stream alone: nodes visited is the final visited-set size,
// edges relaxed is the number of relaxed-edge marks across all steps. For
// the single-source algorithms both match the terminal Result exactly.
func FoldTransitions(steps []step.Step) (nodesVisited, edgesRelaxed int) {
	for _, st := range steps {
		if len(st.Visited) > nodesVisited {
			nodesVisited = len(st.Visited)
		}
		for _, es := range st.EdgeStates {
			if es == step.EdgeRelaxed {
				edgesRelaxed++
			}
		}
	}

	return nodesVisited, edgesRelaxed
}
