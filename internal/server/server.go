// Package server exposes the engine, the converters and the snapshot store
// over HTTP with gin. Every algorithm has its own POST route and answers
// with the sanitised trace result.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/graphtrace/engine"
	"github.com/katalvlaran/graphtrace/internal/logging"
	"github.com/katalvlaran/graphtrace/internal/store"
	"github.com/katalvlaran/graphtrace/internal/store/memstore"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

// Deps are the collaborators a Server routes to.
type Deps struct {
	// Engine and Store default to engine.New() and an in-memory store.
	Engine *engine.Engine
	Store  store.Store

	// Gatherer backs /metrics; nil serves the default registry.
	Gatherer prometheus.Gatherer

	// Logger receives access and error records; nil discards them.
	Logger *slog.Logger
}

// Options tunes middleware.
type Options struct {
	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit float64
	Burst     int

	// ServiceName labels the OpenTelemetry server spans.
	ServiceName string
}

// Server is the HTTP front of graphtrace.
type Server struct {
	engine *engine.Engine
	store  store.Store
	logger *slog.Logger
	router *gin.Engine
}

// New wires routes and middleware. gin's mode is left to the caller.
func New(deps Deps, opts Options) *Server {
	s := &Server{
		engine: deps.Engine,
		store:  deps.Store,
		logger: deps.Logger,
	}
	if s.engine == nil {
		s.engine = engine.New()
	}
	if s.store == nil {
		s.store = memstore.New()
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	service := opts.ServiceName
	if service == "" {
		service = "graphtrace"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(service))
	r.Use(requestScope(s.logger))

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/")
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		api.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	for _, name := range engine.Algorithms() {
		if engine.NeedsStart(name) {
			api.POST("/"+name, s.handleAlgoRequest(name))
		} else {
			api.POST("/"+name, s.handleGraphRequest(name))
		}
	}

	api.POST("/to_matrix", s.handleToMatrix)
	api.POST("/to_edge_list", s.handleToEdgeList)
	api.POST("/to_adj_list", s.handleToAdjList)
	api.POST("/from_matrix", s.handleFrom(wire.FromMatrix))
	api.POST("/from_edge_list", s.handleFrom(wire.FromEdgeList))
	api.POST("/from_adj_list", s.handleFrom(wire.FromAdjList))

	api.POST("/save", s.handleSave)
	api.GET("/load", s.handleLoad)

	s.router = r

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }
