package flow

import (
	"errors"
	"fmt"
)

// ErrNilGraph is returned when the input graph is nil.
var ErrNilGraph = errors.New("flow: graph is nil")

// ErrSourceIsSink is returned when source and sink are the same vertex.
var ErrSourceIsSink = errors.New("flow: source and sink must differ")

// ErrBadEpsilon is returned when WithEpsilon receives a negative value.
var ErrBadEpsilon = errors.New("flow: epsilon must be ≥ 0")

// Options configures FordFulkerson.
//   - Epsilon: spare capacities ≤ Epsilon count as saturated (default 1e-9).
//   - MaxAugmentations: stop after this many augmenting paths; 0 means no limit.
type Options struct {
	Epsilon          float64
	MaxAugmentations int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Epsilon: 1e-9}.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}

// WithEpsilon sets the saturation tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: %g", ErrBadEpsilon, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxAugmentations caps the number of augmenting rounds. The result is
// then a feasible but possibly non-maximal flow.
func WithMaxAugmentations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAugmentations = n
		}
	}
}
