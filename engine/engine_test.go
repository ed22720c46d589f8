package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathlab/algorithms"
	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/engine"
	"github.com/katalvlaran/pathlab/step"
)

// unitGrid builds a 2x5 grid with unit weights: minimum hops and minimum
// cost coincide on it, which the tie scenarios rely on.
func unitGrid(t require.TestingT) *core.Graph {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		nil,
		builder.Grid(2, 5),
	)
	require.NoError(t, err)

	return g
}

// countingSeq wraps a sequence and counts how many steps the underlying
// executable actually produced across all pulls.
func countingSeq(inner step.Seq, produced *int) step.Seq {
	return func(yield func(step.Step) bool) {
		inner(func(st step.Step) bool {
			*produced++

			return yield(st)
		})
	}
}

type StepperSuite struct {
	suite.Suite

	produced int
	stepper  *engine.Stepper
	total    int
}

func (s *StepperSuite) SetupTest() {
	g := unitGrid(s.T())
	seq, err := algorithms.BFS(g, builder.GridID(0, 0), builder.GridID(1, 4))
	s.Require().NoError(err)

	s.produced = 0
	s.stepper, err = engine.NewStepper(countingSeq(seq, &s.produced))
	s.Require().NoError(err)

	// A reference run of the same sequence gives the expected length.
	s.total = 0
	seq(func(step.Step) bool { s.total++; return true })
}

func (s *StepperSuite) TestEagerFirstStep() {
	s.Equal(0, s.stepper.Current().Number)
	s.Equal(1, s.stepper.Len())
	s.Equal(1, s.produced)
}

func (s *StepperSuite) TestRunToEndReachesTerminal() {
	last := s.stepper.RunToEnd()
	s.True(last.Final)
	s.Require().NotNil(last.Result)
	s.Equal(s.total, s.stepper.Len())
	s.True(s.stepper.Finished())
}

func (s *StepperSuite) TestPrevAndRewindNeverRecompute() {
	s.stepper.RunToEnd()
	producedAfterRun := s.produced

	st, ok := s.stepper.Prev()
	s.True(ok)
	s.Equal(s.total-2, st.Number)

	first := s.stepper.Rewind()
	s.Equal(0, first.Number)

	// Walk forward through the whole buffer again.
	for i := 1; i < s.total; i++ {
		st, ok := s.stepper.Next()
		s.Require().True(ok)
		s.Equal(i, st.Number)
	}

	// Each distinct index was computed exactly once, no matter how the
	// cursor wandered.
	s.Equal(producedAfterRun, s.produced)
	s.Equal(s.total, s.produced)
}

func (s *StepperSuite) TestBufferGrowsMonotonically() {
	prev := s.stepper.Len()
	for {
		_, ok := s.stepper.Next()
		s.GreaterOrEqual(s.stepper.Len(), prev)
		prev = s.stepper.Len()
		if !ok {
			break
		}
	}
	s.stepper.Rewind()
	s.Equal(prev, s.stepper.Len(), "rewinding must not shrink the buffer")
}

func (s *StepperSuite) TestExhaustionIsIdempotent() {
	s.stepper.RunToEnd()
	for i := 0; i < 3; i++ {
		_, ok := s.stepper.Next()
		s.False(ok)
	}
	s.Equal(s.total, s.stepper.Len())
	s.True(s.stepper.Current().Final)
}

func (s *StepperSuite) TestSeekPullsForwardOnFreshStepper() {
	st := s.stepper.Seek(5)
	s.Equal(5, st.Number)
	s.Equal(6, s.stepper.Len())
	s.Equal(6, s.produced)

	// Rewinding and seeking back must replay the buffer, not the run.
	s.Equal(0, s.stepper.Rewind().Number)
	again := s.stepper.Seek(5)
	s.Equal(st.Number, again.Number)
	s.Equal(6, s.produced)
}

func (s *StepperSuite) TestSeekClampsToEnds() {
	s.Equal(0, s.stepper.Seek(-5).Number)

	// Seeking far past the end drains the sequence and lands on the
	// terminal step.
	s.Equal(s.total-1, s.stepper.Seek(1_000_000).Number)
	s.True(s.stepper.Finished())
	s.Equal(2, s.stepper.Seek(2).Number)
}

func (s *StepperSuite) TestPrevAtStartFails() {
	_, ok := s.stepper.Prev()
	s.False(ok)
	s.Equal(0, s.stepper.Current().Number)
}

func TestStepperSuite(t *testing.T) {
	suite.Run(t, new(StepperSuite))
}

func TestNewStepperEmptySequence(t *testing.T) {
	empty := step.Seq(func(yield func(step.Step) bool) {})
	_, err := engine.NewStepper(empty)
	require.ErrorIs(t, err, engine.ErrEmptySequence)
}

func TestRecorderLifecycle(t *testing.T) {
	g := unitGrid(t)
	rec := engine.NewRecorder()

	_, err := rec.RunToCompletion()
	require.ErrorIs(t, err, engine.ErrNotStarted)

	require.Error(t, rec.Start("no-such-algorithm", g, "0,0", "1,4"))

	require.NoError(t, rec.Start("dijkstra", g, builder.GridID(0, 0), builder.GridID(1, 4)))
	require.ErrorIs(t, rec.Start("dijkstra", g, "0,0", "1,4"), engine.ErrAlreadyStarted)

	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	require.True(t, m.PathFound)
	require.Equal(t, float64(5), m.PathCost)
	require.Equal(t, 5, m.PathLength)
	require.Equal(t, "dijkstra", m.AlgorithmKey)
	require.NotZero(t, m.RunID)
	require.Equal(t, m.TotalSteps, m.PeakBuffered)

	// Re-running returns the identical metrics without driving again.
	again, err := rec.RunToCompletion()
	require.NoError(t, err)
	require.Equal(t, m, again)
}

func TestRecorderPropagatesConstructorErrors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", -2)
	require.NoError(t, err)

	rec := engine.NewRecorder()
	err = rec.Start("dijkstra", g, "A", "B")
	require.ErrorIs(t, err, algorithms.ErrNegativeWeight)
}

func TestMetricsAgreeWithStepTransitions(t *testing.T) {
	g := unitGrid(t)
	rec := engine.NewRecorder()
	require.NoError(t, rec.Start("dijkstra", g, builder.GridID(0, 0), builder.GridID(1, 4)))

	m, err := rec.RunToCompletion()
	require.NoError(t, err)

	stepper, err := rec.Stepper()
	require.NoError(t, err)
	nodes, relaxed := engine.FoldTransitions(stepper.Steps())
	require.Equal(t, m.NodesVisited, nodes, "visited fold must match the terminal result")
	require.Equal(t, m.EdgesRelaxed, relaxed, "relaxation fold must match the terminal result")
}

func TestRecorderHeuristicOnlyForHeuristicAlgorithms(t *testing.T) {
	g := unitGrid(t)

	astar := engine.NewRecorder()
	require.NoError(t, astar.Start("astar", g, "0,0", "1,4", algorithms.WithHeuristic(algorithms.HeuristicManhattan)))
	m, err := astar.RunToCompletion()
	require.NoError(t, err)
	require.Equal(t, string(algorithms.HeuristicManhattan), m.Heuristic)

	bfs := engine.NewRecorder()
	require.NoError(t, bfs.Start("bfs", g, "0,0", "1,4"))
	m, err = bfs.RunToCompletion()
	require.NoError(t, err)
	require.Empty(t, m.Heuristic)
}

func TestBFSAndDijkstraTieOnUnitWeights(t *testing.T) {
	g := unitGrid(t)
	source, target := builder.GridID(0, 0), builder.GridID(1, 4)

	run := func(key string) engine.Metrics {
		rec := engine.NewRecorder()
		require.NoError(t, rec.Start(key, g, source, target))
		m, err := rec.RunToCompletion()
		require.NoError(t, err)

		return m
	}

	c := engine.Compare(run("bfs"), run("dijkstra"))
	require.Equal(t, engine.VerdictTie, c.PathCost,
		"minimum hops and minimum cost coincide on unit weights")
	require.Equal(t, float64(5), c.Left.PathCost)

	// The far corner is the last vertex either algorithm commits to, so
	// both visit all ten and the metric ties.
	require.Equal(t, engine.VerdictTie, c.NodesVisited)
	require.Equal(t, 10, c.Left.NodesVisited)
	require.Equal(t, 10, c.Right.NodesVisited)
}

func TestCompareVerdictsAndSymmetry(t *testing.T) {
	left := engine.Metrics{NodesVisited: 3, EdgesRelaxed: 10, PathFound: true, PathCost: 4, Duration: 100}
	right := engine.Metrics{NodesVisited: 7, EdgesRelaxed: 10, PathFound: true, PathCost: 2, Duration: 100}

	c := engine.Compare(left, right)
	require.Equal(t, engine.VerdictLeft, c.NodesVisited)
	require.Equal(t, engine.VerdictTie, c.EdgesRelaxed)
	require.Equal(t, engine.VerdictRight, c.PathCost)
	require.Equal(t, engine.VerdictTie, c.WallTime)

	// Swapping the arguments mirrors every verdict.
	mirror := engine.Compare(right, left)
	require.Equal(t, engine.VerdictRight, mirror.NodesVisited)
	require.Equal(t, engine.VerdictLeft, mirror.PathCost)
	require.Equal(t, engine.VerdictTie, mirror.EdgesRelaxed)
}

func TestComparePathlessRuns(t *testing.T) {
	found := engine.Metrics{PathFound: true, PathCost: 100}
	lost := engine.Metrics{PathFound: false}

	require.Equal(t, engine.VerdictLeft, engine.Compare(found, lost).PathCost,
		"any found path beats no path")
	require.Equal(t, engine.VerdictTie, engine.Compare(lost, lost).PathCost)
}
