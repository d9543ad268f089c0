// Package patrol provides tunable options, result types and error
// definitions for the patrol simulation.
package patrol

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// Sentinel errors for patrol simulation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to NewArea.
	ErrNilGrid = errors.New("patrol: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")
)

// Outcome tells how a walk ended.
type Outcome uint8

const (
	// Exited means the agent stepped outside the area.
	Exited Outcome = iota
	// Looped means the agent repeated an exact (position, heading) pair.
	Looped
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Trace is the record of a single walk.
type Trace struct {
	// Outcome tells whether the agent left the area or looped.
	Outcome Outcome
	// Steps counts turns and moves; it never exceeds Width×Height×4.
	Steps int
	// Visited lists the distinct cells covered, row-major, start included.
	Visited []grid.Point
}

// Distinct returns the number of distinct cells covered by the walk.
func (t Trace) Distinct() int {
	return len(t.Visited)
}

// Option configures an Area via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewArea.
type Option func(*Options)

// Options holds the parameters of an Area.
type Options struct {
	// Ctx allows cancelling the candidate search.
	Ctx context.Context

	// Workers bounds the goroutines evaluating candidates. 1 runs trials
	// sequentially against the Area's own obstacle set.
	Workers int

	// OnTrial, if non-nil, is called once per candidate after its walk.
	// Calls are serialised even when Workers > 1.
	OnTrial func(candidate grid.Point, looped bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, one worker and
// no trial hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnTrial: nil,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines evaluating candidates.
// n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnTrial installs fn as a per-candidate hook.
func WithOnTrial(fn func(candidate grid.Point, looped bool)) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}
