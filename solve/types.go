// Package solve defines shared options, sentinel errors and the Result type
// for the three asterfield traversal engines.
package solve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/asterfield/field"
)

// DefaultMaxExpansions bounds how many states an engine may expand before
// declaring failure. The configuration space grows exponentially with grid
// size, so a bounded worst case is preferred over unbounded runtime.
const DefaultMaxExpansions = 200_000

// Sentinel errors for engine invocation.
var (
	// ErrNilConfig is returned if a nil start configuration is passed.
	ErrNilConfig = errors.New("solve: start configuration is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. negative ceiling), it is recorded
// internally and surfaced as ErrOptionViolation when the engine runs.
type Option func(*Options)

// Options holds parameters and callbacks shared by DFS, BFS and BestFirst.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// MaxExpansions is the expansion ceiling. Reaching it ends the search
	// with a not-found Result carrying partial statistics.
	MaxExpansions int

	// Heuristic scores configurations for BestFirst; lower is explored
	// first. Ignored by DFS and BFS.
	Heuristic Heuristic

	// OnExpand is called each time a state is expanded, with the probe's
	// position and the running expansion count (1-based).
	OnExpand func(pos field.Position, expanded int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MaxExpansions = DefaultMaxExpansions
//   - Manhattan heuristic
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: DefaultMaxExpansions,
		Heuristic:     Manhattan,
		OnExpand:      func(field.Position, int) {},
		err:           nil,
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

// WithMaxExpansions overrides the expansion ceiling.
//
//	n > 0: expand at most n states
//	n == 0: explicit DefaultMaxExpansions
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxExpansions = DefaultMaxExpansions
		default:
			o.MaxExpansions = n
		}
	}
}

// WithHeuristic sets the scoring function used by BestFirst.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback to run on each expansion.
func WithOnExpand(fn func(pos field.Position, expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions folds functional options over the defaults and surfaces any
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// Result holds the outcome of one search:
//   - Path: configurations from start to goal inclusive; nil when not found.
//   - Found: whether a solution was discovered.
//   - Expanded: number of states whose successors were generated.
//   - Elapsed: wall-clock duration of the search.
//   - Visited: probe positions in expansion order.
//   - Truncated: the expansion ceiling ended the search before exhaustion.
//
// A not-found Result is the expected outcome for unsolvable or degenerate
// starts and for ceiling hits; it is a first-class value, not an error.
type Result struct {
	Path      []*field.Config
	Found     bool
	Expanded  int
	Elapsed   time.Duration
	Visited   []field.Position
	Truncated bool
}

// Moves derives the action sequence from the solution trace: one Direction
// per consecutive pair of path configurations. Returns nil when no solution
// was found.
func (r *Result) Moves() []field.Direction {
	if !r.Found || len(r.Path) < 2 {
		return nil
	}
	moves := make([]field.Direction, 0, len(r.Path)-1)
	prev, _ := r.Path[0].ProbePosition()
	for _, cfg := range r.Path[1:] {
		cur, _ := cfg.ProbePosition()
		d, ok := field.DirectionOf(prev, cur)
		if !ok {
			return nil
		}
		moves = append(moves, d)
		prev = cur
	}
	return moves
}
