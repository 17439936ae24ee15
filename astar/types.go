// Package astar defines the outcome, result and option types for A*
// search over a gridgraph.Grid.
//
// Options:
//
//	– Ctx:    cancellation and deadlines, checked once per iteration.
//	– OnStep: observer invoked after every dequeue-and-expand iteration and
//	          after every path cell is tagged. Returning ErrStop ends the
//	          search with Outcome Cancelled.
//
// Errors (sentinel):
//
//	– ErrInvalidInvocation if the grid is nil, start equals end, either
//	  endpoint is out of bounds, or either endpoint is a barrier.
//	– ErrStop is never returned; observers return it to request a stop.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Sentinel errors used by the search engine.
var (
	// ErrInvalidInvocation indicates a caller contract violation. It is
	// returned before anything is enqueued.
	ErrInvalidInvocation = errors.New("astar: invalid invocation")

	// ErrStop is returned by a step observer to stop the search early.
	// The search then reports Cancelled with a nil error.
	ErrStop = errors.New("astar: stop requested")
)

// Outcome reports how a search ended.
type Outcome int

const (
	// Pending means the search has not finished yet. Only a Stepper can
	// be observed in this state.
	Pending Outcome = iota
	// Found means end was reached and the path was reconstructed.
	Found
	// NotFound means the frontier was exhausted; end is unreachable.
	// This is a normal negative result, not an error.
	NotFound
	// Cancelled means the observer or the context stopped the search.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result holds the outcome of a search:
//   - Outcome: Found, NotFound or Cancelled (Pending mid-search).
//   - Path: cells from start to end inclusive when Found, nil otherwise.
//   - Cost: number of unit moves along Path, equal to g_score[end].
//   - Expanded: dequeue-and-expand iterations performed.
type Result struct {
	Outcome  Outcome
	Path     []gridgraph.Coord
	Cost     int
	Expanded int
}

// StepFunc observes search progress. It must not mutate the grid.
type StepFunc func() error

// Options holds parameters and callbacks to customise a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnStep is called once per expansion and once per path cell tagged.
	OnStep StepFunc
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context and a no-op
// observer.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func() error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the step observer, typically a redraw.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
