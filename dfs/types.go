package dfs

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// FullTraversal, if true, restarts from every vertex left unvisited
	// (in node order) once the start's component is exhausted.
	FullTraversal bool
}

// DefaultOptions returns single-source traversal.
func DefaultOptions() Options {
	return Options{FullTraversal: false}
}

// WithFullTraversal enables forest traversal covering every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}
