package navigator

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
)

const tracerName = "github.com/katalvlaran/gridpath/navigator"

// Engine answers route queries over one immutable grid.
type Engine struct {
	grid   *gridmap.Grid
	opts   Options
	logger *slog.Logger

	queries   atomic.Int64
	found     atomic.Int64
	notFound  atomic.Int64
	errs      atomic.Int64
	expanded  atomic.Int64
	lastQuery atomic.Int64 // Unix milliseconds of the last query start
}

// NewEngine builds an Engine for g.
// Returns ErrNilGrid for a nil grid and ErrOptionViolation for bad options.
func NewEngine(g *gridmap.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{grid: g, opts: o, logger: o.Logger}, nil
}

// Grid returns the engine's grid.
func (e *Engine) Grid() *gridmap.Grid { return e.grid }

// Route finds a shortest path from start to goal.
//
// A nil error with Result.Found == false means the goal is unreachable.
// Errors are astar.ErrInvalidEndpoint, astar.ErrExpansionLimit or the
// context's error (including the engine timeout).
func (e *Engine) Route(ctx context.Context, start, goal gridmap.Position) (*astar.Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "navigator.Engine.Route",
		trace.WithAttributes(
			attribute.String("start", start.String()),
			attribute.String("goal", goal.String()),
		),
	)
	defer span.End()

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	began := time.Now()
	e.queries.Add(1)
	e.lastQuery.Store(began.UnixMilli())

	res, err := e.search(ctx, start, goal)
	elapsed := time.Since(began)
	routeDuration.Observe(elapsed.Seconds())

	if err != nil {
		kind := classify(err)
		e.errs.Add(1)
		routeTotal.WithLabelValues(resultError).Inc()
		routeErrors.WithLabelValues(kind).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		e.logger.Debug("route_failed",
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.String("error_type", kind),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
		)
		return nil, err
	}

	result := resultNoPath
	if res.Found {
		result = resultFound
		e.found.Add(1)
	} else {
		e.notFound.Add(1)
	}
	e.expanded.Add(int64(res.Expanded))
	routeTotal.WithLabelValues(result).Inc()
	routeExpanded.Observe(float64(res.Expanded))

	span.SetAttributes(
		attribute.String("result", result),
		attribute.Int("cost", res.Cost),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("stale", res.Stale),
	)
	span.SetStatus(codes.Ok, result)

	e.logger.Debug("route_done",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.String("result", result),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", elapsed),
	)
	if e.opts.SlowQueryThreshold > 0 && elapsed >= e.opts.SlowQueryThreshold {
		e.logger.Warn("route_slow",
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.Int("expanded", res.Expanded),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", e.opts.SlowQueryThreshold),
		)
	}

	return res, nil
}

// search runs one A* query with the engine's options.
func (e *Engine) search(ctx context.Context, start, goal gridmap.Position) (*astar.Result, error) {
	s, err := astar.NewSearch(e.grid, start, goal,
		astar.WithContext(ctx),
		astar.WithHeuristic(e.opts.Heuristic),
		astar.WithMaxExpansions(e.opts.MaxExpansions),
	)
	if err != nil {
		return nil, err
	}

	return s.Run()
}

// RouteAll runs every query with at most workers concurrent searches and
// returns outcomes in input order. workers <= 0 uses runtime.NumCPU().
// Queries not yet started when ctx is done report ctx.Err().
func (e *Engine) RouteAll(ctx context.Context, queries []Query, workers int) []Outcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(queries) {
		workers = len(queries)
	}
	out := make([]Outcome, len(queries))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				q := queries[i]
				res, err := e.Route(ctx, q.Start, q.Goal)
				out[i] = Outcome{Query: q, Result: res, Err: err}
			}
		}()
	}

feed:
	for i := range queries {
		select {
		case <-ctx.Done():
			for j := i; j < len(queries); j++ {
				out[j] = Outcome{Query: queries[j], Err: ctx.Err()}
			}
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return out
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Queries:       e.queries.Load(),
		Found:         e.found.Load(),
		NotFound:      e.notFound.Load(),
		Errors:        e.errs.Load(),
		TotalExpanded: e.expanded.Load(),
	}
	if ms := e.lastQuery.Load(); ms > 0 {
		s.LastQuery = time.UnixMilli(ms)
	}

	return s
}

// classify maps an error to its metric label.
func classify(err error) string {
	switch {
	case errors.Is(err, astar.ErrInvalidEndpoint):
		return errInvalidEndpoint
	case errors.Is(err, astar.ErrExpansionLimit):
		return errLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errCanceled
	default:
		return errOther
	}
}
