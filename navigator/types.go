package navigator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for engine construction.
var (
	// ErrNilGrid indicates that a nil grid was passed to NewEngine.
	ErrNilGrid = errors.New("navigator: grid is nil")

	// ErrOptionViolation indicates that an Option received an invalid argument.
	ErrOptionViolation = errors.New("navigator: invalid option supplied")
)

// Result labels used by metrics and logs.
const (
	resultFound  = "found"
	resultNoPath = "no_path"
	resultError  = "error"
)

// Error type labels.
const (
	errInvalidEndpoint = "invalid_endpoint"
	errLimit           = "limit"
	errCanceled        = "canceled"
	errOther           = "other"
)

// Options configures an Engine.
type Options struct {
	// Logger receives per-query Debug records and slow-query warnings.
	// Default: slog.Default() tagged with component=navigator.
	Logger *slog.Logger

	// Timeout bounds a single query. 0 disables it.
	Timeout time.Duration

	// MaxExpansions caps cells expanded per query. 0 disables it.
	MaxExpansions int

	// SlowQueryThreshold triggers a Warn record for queries at least this slow.
	// 0 disables slow-query logging.
	SlowQueryThreshold time.Duration

	// Heuristic used by every query. Default: astar.Manhattan.
	Heuristic astar.Heuristic

	// internal error recorded during option parsing
	err error
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// DefaultOptions returns the engine defaults:
//   - Logger: slog.Default().With(component=navigator)
//   - Timeout: 30s
//   - MaxExpansions: 0 (no cap)
//   - SlowQueryThreshold: 100ms
//   - Heuristic: astar.Manhattan
func DefaultOptions() Options {
	return Options{
		Logger:             slog.Default().With(slog.String("component", "navigator")),
		Timeout:            30 * time.Second,
		MaxExpansions:      0,
		SlowQueryThreshold: 100 * time.Millisecond,
		Heuristic:          astar.Manhattan,
	}
}

// WithLogger sets the structured logger. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTimeout bounds each query; d == 0 disables the bound, d < 0 is invalid.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithMaxExpansions caps expansions per query; n == 0 disables, n < 0 is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithSlowQueryThreshold sets the slow-query warning threshold; 0 disables it.
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: slow query threshold cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.SlowQueryThreshold = d
	}
}

// WithHeuristic replaces the default Manhattan heuristic.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic must not be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// Query is one start/goal pair for RouteAll.
type Query struct {
	Start, Goal gridmap.Position
}

// Outcome pairs a Query with its result or error.
type Outcome struct {
	Query  Query
	Result *astar.Result
	Err    error
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	Queries       int64
	Found         int64
	NotFound      int64
	Errors        int64
	TotalExpanded int64
	LastQuery     time.Time // zero if no query has run
}
