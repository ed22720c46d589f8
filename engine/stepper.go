// Package engine drives step sequences: interactive playback (Stepper),
// instrumented full runs (Recorder), and side-by-side comparison (Compare).
package engine

import (
	"errors"
	"iter"

	"github.com/katalvlaran/pathlab/step"
)

var (
	// ErrEmptySequence is returned when a sequence yields no step at all.
	ErrEmptySequence = errors.New("engine: sequence produced no steps")

	// ErrNotStarted is returned by Recorder methods used before Start.
	ErrNotStarted = errors.New("engine: recorder not started")

	// ErrAlreadyStarted is returned by a second Start on the same Recorder.
	ErrAlreadyStarted = errors.New("engine: recorder already started")
)

// Stepper is a playback head over a lazy step sequence.
//
// Every pulled step is buffered, so stepping backwards is a pure cursor
// move and never re-runs the algorithm; stepping forward pulls from the
// sequence only when the cursor is already at the buffered end. The
// underlying sequence is pulled exactly once per distinct step index no
// matter how the cursor wanders.
type Stepper struct {
	next      func() (step.Step, bool)
	stop      func()
	buf       []step.Step
	cursor    int
	exhausted bool
}

// NewStepper starts playback over seq. The first step is pulled eagerly so
// Current is valid immediately; an empty sequence is an error.
func NewStepper(seq step.Seq) (*Stepper, error) {
	next, stop := iter.Pull(iter.Seq[step.Step](seq))
	first, ok := next()
	if !ok {
		stop()

		return nil, ErrEmptySequence
	}

	return &Stepper{
		next: next,
		stop: stop,
		buf:  []step.Step{first},
	}, nil
}

// Current returns the step under the cursor.
func (s *Stepper) Current() step.Step {
	return s.buf[s.cursor]
}

// Index returns the cursor position.
func (s *Stepper) Index() int { return s.cursor }

// Len returns how many steps have been buffered so far. It never shrinks.
func (s *Stepper) Len() int { return len(s.buf) }

// Finished reports whether the sequence has been pulled to exhaustion.
func (s *Stepper) Finished() bool { return s.exhausted }

// Next advances the cursor one step, pulling from the sequence only when
// the cursor is at the buffered end. It returns false, leaving the cursor
// in place, once the sequence is exhausted; calling it again after that is
// harmless and keeps returning false.
func (s *Stepper) Next() (step.Step, bool) {
	if s.cursor+1 < len(s.buf) {
		s.cursor++

		return s.buf[s.cursor], true
	}
	if s.exhausted {
		return step.Step{}, false
	}

	st, ok := s.next()
	if !ok {
		s.exhausted = true
		s.stop()

		return step.Step{}, false
	}
	s.buf = append(s.buf, st)
	s.cursor++

	return st, true
}

// Prev moves the cursor one step back. It returns false at step zero.
func (s *Stepper) Prev() (step.Step, bool) {
	if s.cursor == 0 {
		return step.Step{}, false
	}
	s.cursor--

	return s.buf[s.cursor], true
}

// Rewind resets the cursor to the first step. The buffer is kept.
func (s *Stepper) Rewind() step.Step {
	s.cursor = 0

	return s.buf[0]
}

// Seek moves the cursor to index i. Indices inside the buffer are a pure
// cursor move; indices past the buffered end pull the sequence forward
// until i is reached or the sequence is exhausted. The result is clamped
// to [0, Len()-1].
func (s *Stepper) Seek(i int) step.Step {
	if i < 0 {
		i = 0
	}
	for i >= len(s.buf) && !s.exhausted {
		st, ok := s.next()
		if !ok {
			s.exhausted = true
			s.stop()

			break
		}
		s.buf = append(s.buf, st)
	}
	if i >= len(s.buf) {
		i = len(s.buf) - 1
	}
	s.cursor = i

	return s.buf[s.cursor]
}

// RunToEnd pulls the sequence to exhaustion and leaves the cursor on the
// terminal step, which it returns.
func (s *Stepper) RunToEnd() step.Step {
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	s.cursor = len(s.buf) - 1

	return s.buf[s.cursor]
}

// Steps returns the buffered prefix of the sequence as a copy.
func (s *Stepper) Steps() []step.Step {
	out := make([]step.Step, len(s.buf))
	copy(out, s.buf)

	return out
}

// Close releases the underlying pull iterator. Using the cursor over
// already-buffered steps remains valid after Close.
func (s *Stepper) Close() {
	if !s.exhausted {
		s.exhausted = true
		s.stop()
	}
}
