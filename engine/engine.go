package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// tracerName is the instrumentation scope of engine spans.
const tracerName = "github.com/katalvlaran/gridpath/engine"

// Options configures an Engine.
type Options struct {
	Logger  *slog.Logger
	Metrics *Metrics
	Tracer  trace.Tracer
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger for per-search records. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// DefaultOptions discards logs, records no metrics and traces through the
// global OpenTelemetry provider.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer: otel.Tracer(tracerName),
	}
}

// Engine runs registered algorithms against caller-owned grids.
// An Engine holds no per-search state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New builds an Engine from DefaultOptions and opts.
func New(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{opts: cfg}
}

// Run executes kind on g from start to goal with a fresh search.State.
// The grid is only read. An unreachable goal is not an error: the Result
// has Found == false and Path == [goal].
func (e *Engine) Run(ctx context.Context, g *gridgraph.Grid, kind Kind, start, goal gridgraph.Coord) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	strategy := kind.Strategy()
	if strategy == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, kind)
	}

	ctx, span := e.opts.Tracer.Start(ctx, "engine.Run",
		trace.WithAttributes(
			attribute.String("algorithm", kind.String()),
			attribute.Int("rows", g.Rows),
			attribute.Int("cols", g.Cols),
			attribute.String("start", start.String()),
			attribute.String("goal", goal.String()),
		),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "context done before search")
		return nil, err
	}

	st := search.NewState(g)
	began := time.Now()
	visited, err := strategy.Run(st, start, goal)
	elapsed := time.Since(began)
	if err != nil {
		e.opts.Metrics.observeError(kind)
		span.RecordError(err)
		span.SetStatus(codes.Error, "search rejected input")
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	path := st.Path(goal)
	res := &Result{
		Algorithm: kind,
		Visited:   visited,
		Path:      path,
		Found:     path[0] == start,
		Cost:      search.Unreachable,
		Elapsed:   elapsed,
	}
	if res.Found {
		res.Cost = pathCost(g, kind, path)
	}

	e.opts.Metrics.observe(res)
	span.SetAttributes(
		attribute.Int("visited", len(visited)),
		attribute.Int("path_length", len(path)),
		attribute.Bool("found", res.Found),
	)
	span.SetStatus(codes.Ok, "search finished")

	e.opts.Logger.DebugContext(ctx, "search finished",
		"algorithm", kind.String(),
		"visited", len(visited),
		"path_length", len(path),
		"found", res.Found,
		"duration", elapsed,
	)
	if !res.Found {
		e.opts.Logger.WarnContext(ctx, "goal unreachable",
			"algorithm", kind.String(), "start", start.String(), "goal", goal.String())
	}

	return res, nil
}

// Compare runs every kind on g concurrently, each with its own State, and
// returns the results in the order of kinds. The first error cancels the rest.
func (e *Engine) Compare(ctx context.Context, g *gridgraph.Grid, kinds []Kind, start, goal gridgraph.Coord) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, k)
		}
	}

	ctx, span := e.opts.Tracer.Start(ctx, "engine.Compare",
		trace.WithAttributes(attribute.Int("algorithms", len(kinds))))
	defer span.End()

	results := make([]*Result, len(kinds))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		i, k := i, k
		eg.Go(func() error {
			res, err := e.Run(egCtx, g, k, start, goal)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "comparison failed")
		return nil, err
	}
	span.SetStatus(codes.Ok, "comparison finished")

	return results, nil
}

// pathCost is the hop count, or for weighted kinds the sum of the weights
// of every cell entered after start.
func pathCost(g *gridgraph.Grid, kind Kind, path []gridgraph.Coord) int64 {
	if !kind.Weighted() {
		return int64(len(path) - 1)
	}
	var cost int64
	for _, c := range path[1:] {
		cost = search.AddCost(cost, g.Weight(c))
	}

	return cost
}
