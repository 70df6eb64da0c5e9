package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	steps    *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "graphtrace_algorithm_runs_total",
			Help: "Algorithm runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphtrace_algorithm_duration_seconds",
			Help:    "Wall time of one algorithm run",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
		}, []string{"algorithm"}),
		steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphtrace_algorithm_steps",
			Help:    "Steps recorded per successful run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"algorithm"}),
	}
}
