package bellmanford

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// Options configures a Bellman-Ford run.
type Options struct {
	// End, if set, selects the single-path result form.
	End string
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// WithEnd sets the target vertex.
func WithEnd(id string) Option {
	return func(o *Options) { o.End = id }
}
