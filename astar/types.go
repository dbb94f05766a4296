// Package astar defines sentinel errors, search states, results and
// functional options for the A* driver.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal is out of bounds or blocked.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrOptionViolation indicates that an Option received an invalid argument.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates that the search hit its expansion cap.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrEmptyFrontier indicates Pop on an empty frontier.
	ErrEmptyFrontier = errors.New("astar: frontier is empty")
)

// State is the lifecycle position of a Search.
type State int

const (
	// Idle: constructed, start node not yet seeded.
	Idle State = iota
	// Running: frontier seeded, expansion loop in progress.
	Running
	// Found: the goal was popped; the path is available.
	Found
	// Exhausted: the frontier emptied before the goal was popped.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether s is Found or Exhausted.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted
}

// Result holds the outcome of a completed search:
//   - Path: start→goal inclusive, or empty when no path exists.
//   - Cost: number of unit steps, len(Path)-1 when Found.
//   - Expanded: cells finalized and expanded.
//   - Pushed: frontier pushes, including the start node.
//   - Stale: popped entries skipped because their cell was already finalized.
type Result struct {
	Path     []gridmap.Position
	Cost     int
	Found    bool
	Expanded int
	Pushed   int
	Stale    int
}

// Options configures a Search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per step.
	Ctx context.Context

	// Heuristic estimates remaining cost. Must be admissible and consistent
	// for results to be optimal. Default: Manhattan.
	Heuristic Heuristic

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// cells have been expanded. 0 disables the cap.
	MaxExpansions int

	// OnExpand is called with every node just before its neighbors are pushed.
	OnExpand func(n Node)

	// internal error recorded during option parsing
	err error
}

// Option configures a Search via functional arguments.
// Invalid arguments are recorded and surfaced as ErrOptionViolation by
// NewSearch and FindPath.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - Manhattan heuristic
//   - no expansion cap
//   - no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     Manhattan,
		MaxExpansions: 0,
		OnExpand:      func(Node) {},
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

// WithHeuristic replaces the default Manhattan heuristic.
// A nil heuristic is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic must not be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked for each expanded node.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
