// Package engine is the single entry point that runs any graphtrace
// algorithm by name. It checks the start/end parameters each algorithm
// needs, then wraps the run in an OpenTelemetry span, a pair of slog
// records and Prometheus metrics. Algorithms themselves stay pure.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphtrace/bellmanford"
	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/bipartite"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/dijkstra"
	"github.com/katalvlaran/graphtrace/euler"
	"github.com/katalvlaran/graphtrace/flow"
	"github.com/katalvlaran/graphtrace/internal/logging"
	"github.com/katalvlaran/graphtrace/prim_kruskal"
	"github.com/katalvlaran/graphtrace/trace"
)

var (
	// ErrUnknownAlgorithm is returned for a name missing from Algorithms().
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrNilGraph indicates a Request without a graph.
	ErrNilGraph = errors.New("engine: graph is nil")
)

// Request names one run.
type Request struct {
	Algorithm string
	Graph     *core.Graph

	// StartID is the start for traversals and shortest paths, the source
	// for max flow and the optional root for Prim.
	StartID string

	// EndID is the optional target for shortest paths and the sink for
	// max flow.
	EndID string
}

// params says which request ids an algorithm insists on.
type params struct {
	start, end bool
}

type runner struct {
	need params
	run  func(Request) (*trace.Result, error)
}

var registry = map[string]runner{
	bfs.Algorithm: {params{start: true}, func(r Request) (*trace.Result, error) {
		return bfs.BFS(r.Graph, r.StartID)
	}},
	dfs.Algorithm: {params{start: true}, func(r Request) (*trace.Result, error) {
		return dfs.DFS(r.Graph, r.StartID)
	}},
	dijkstra.Algorithm: {params{start: true}, func(r Request) (*trace.Result, error) {
		return dijkstra.Dijkstra(r.Graph, r.StartID, dijkstra.WithEnd(r.EndID))
	}},
	bellmanford.Algorithm: {params{start: true}, func(r Request) (*trace.Result, error) {
		return bellmanford.BellmanFord(r.Graph, r.StartID, bellmanford.WithEnd(r.EndID))
	}},
	prim_kruskal.PrimAlgorithm: {params{}, func(r Request) (*trace.Result, error) {
		return prim_kruskal.Compute(r.Graph,
			prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(r.StartID))
	}},
	prim_kruskal.KruskalAlgorithm: {params{}, func(r Request) (*trace.Result, error) {
		return prim_kruskal.Compute(r.Graph, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	}},
	flow.Algorithm: {params{start: true, end: true}, func(r Request) (*trace.Result, error) {
		return flow.FordFulkerson(r.Graph, r.StartID, r.EndID)
	}},
	euler.FleuryAlgorithm: {params{}, func(r Request) (*trace.Result, error) {
		return euler.Fleury(r.Graph)
	}},
	euler.HierholzerAlgorithm: {params{}, func(r Request) (*trace.Result, error) {
		return euler.Hierholzer(r.Graph)
	}},
	bipartite.Algorithm: {params{}, func(r Request) (*trace.Result, error) {
		return bipartite.Check(r.Graph)
	}},
}

// Algorithms lists the accepted algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NeedsStart reports whether name requires Request.StartID.
func NeedsStart(name string) bool { return registry[name].need.start }

// NeedsEnd reports whether name requires Request.EndID.
func NeedsEnd(name string) bool { return registry[name].need.end }

// Engine runs algorithms. It holds no per-run state and is safe for
// concurrent use.
type Engine struct {
	logger  *slog.Logger
	tracer  oteltrace.Tracer
	metrics *metrics
}

// New builds an Engine. Without options it logs nowhere, uses the global
// tracer provider and records metrics into a private registry.
func New(opts ...Option) *Engine {
	cfg := newConfig(opts)

	return &Engine{
		logger:  cfg.logger,
		tracer:  cfg.tracerProvider.Tracer(instrumentationName),
		metrics: newMetrics(cfg.registerer),
	}
}

// Run validates req and executes the named algorithm. Errors from the
// algorithm are returned unchanged so callers can match core sentinels.
// A logger stored in ctx by logging.WithLogger takes precedence.
func (e *Engine) Run(ctx context.Context, req Request) (*trace.Result, error) {
	log := logging.FromContext(ctx, e.logger).With(slog.String("algorithm", req.Algorithm))

	ctx, span := e.tracer.Start(ctx, "graphtrace.run", oteltrace.WithAttributes(
		attribute.String("graphtrace.algorithm", req.Algorithm),
	))
	defer span.End()

	started := time.Now()
	res, err := e.run(ctx, req)
	elapsed := time.Since(started)

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("algorithm failed", slog.String("error", err.Error()), slog.Duration("elapsed", elapsed))
	} else {
		span.SetAttributes(attribute.Int("graphtrace.steps", len(res.Steps)))
		e.metrics.steps.WithLabelValues(req.Algorithm).Observe(float64(len(res.Steps)))
		log.Info("algorithm finished",
			slog.Int("steps", len(res.Steps)),
			slog.Int("logs", len(res.Logs)),
			slog.Duration("elapsed", elapsed))
	}
	label := req.Algorithm
	if errors.Is(err, ErrUnknownAlgorithm) {
		label = "unknown"
	}
	e.metrics.runs.WithLabelValues(label, outcome).Inc()
	e.metrics.duration.WithLabelValues(label).Observe(elapsed.Seconds())

	return res, err
}

func (e *Engine) run(ctx context.Context, req Request) (*trace.Result, error) {
	r, ok := registry[req.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if req.Graph == nil {
		return nil, ErrNilGraph
	}
	if r.need.start && req.StartID == "" {
		return nil, fmt.Errorf("%w: start node", core.ErrMissingParameter)
	}
	if r.need.end && req.EndID == "" {
		return nil, fmt.Errorf("%w: end node", core.ErrMissingParameter)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	oteltrace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("graphtrace.nodes", req.Graph.NodeCount()),
		attribute.Int("graphtrace.links", req.Graph.LinkCount()),
		attribute.Bool("graphtrace.directed", req.Graph.Directed()),
	)

	return r.run(req)
}
