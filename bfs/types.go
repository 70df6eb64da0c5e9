package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds BFS parameters.
type Options struct {
	// MaxDepth, if > 0, stops discovery beyond this many hops from the start.
	// Zero means unlimited.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth limits discovery to d hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
