package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// ErrNilGraph indicates that a nil graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod is returned by Compute for an unsupported method name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and, for Prim, the root.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim; empty means the first node.
	// Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the starting vertex for Prim; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions returns Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the MST algorithm selected by WithMethod.
func Compute(g *core.Graph, opts ...Option) (*trace.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, WithRoot(o.Root))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate applies the shared preconditions.
func validate(g *core.Graph, algo string) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return fmt.Errorf("prim_kruskal: %w: %s requires an undirected graph", core.ErrDirection, algo)
	}

	return nil
}

// edgeText renders "u - v (w)" with display labels.
func edgeText(g *core.Graph, u, v string, w float64) string {
	return fmt.Sprintf("%s - %s (%s)", g.Label(u), g.Label(v), trace.FormatNumber(w))
}
