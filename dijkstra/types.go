package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would wall off every link.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// End, if set, stops the search once End's distance is final and
	// selects the single-path result form.
	End string

	// InfEdgeThreshold: links with weight >= this value are skipped.
	// Default +Inf (no walls).
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no end vertex and no walls.
func DefaultOptions() Options {
	return Options{InfEdgeThreshold: math.Inf(1)}
}

// WithEnd sets the target vertex.
func WithEnd(id string) Option {
	return func(o *Options) { o.End = id }
}

// WithInfEdgeThreshold defines a weight at or above which links are treated
// as impassable.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}
