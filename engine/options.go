package engine

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphtrace/internal/logging"
)

const instrumentationName = "github.com/katalvlaran/graphtrace/engine"

type config struct {
	logger         *slog.Logger
	registerer     prometheus.Registerer
	tracerProvider oteltrace.TracerProvider
}

// Option configures an Engine.
type Option func(*config)

// WithLogger sets the fallback logger for runs whose context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegisterer registers the engine metrics with r instead of a private
// registry. Registering two engines with the same r panics.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		if r != nil {
			c.registerer = r
		}
	}
}

// WithTracerProvider sets the provider spans are created from.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracerProvider = tp
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger:         logging.Discard(),
		registerer:     prometheus.NewRegistry(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
