package converters

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
)

// NodeType is stamped on every synthesised node.
const NodeType = "pc"

// Options configures the converters.
//   - Presence: ToAdjacencyMatrix writes 1/0 instead of weights.
//   - Capacity: From* stamps this capacity on every synthesised link;
//     nil leaves capacity absent (it then follows the weight).
type Options struct {
	Presence bool
	Capacity *float64
}

// Option mutates Options.
type Option func(*Options)

// WithPresence makes ToAdjacencyMatrix emit a 1/0 presence flag.
func WithPresence() Option {
	return func(o *Options) { o.Presence = true }
}

// WithCapacity stamps capacity c on synthesised links.
func WithCapacity(c float64) Option {
	return func(o *Options) {
		v := c
		o.Capacity = &v
	}
}

func resolve(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// synth accumulates a synthesised graph: sequential IDs, grid layout,
// label → ID lookup.
type synth struct {
	g    *core.Graph
	opts Options
	ids  map[string]string
}

func newSynth(directed bool, opts Options) *synth {
	return &synth{
		g:    core.NewGraph(core.WithDirected(directed)),
		opts: opts,
		ids:  make(map[string]string),
	}
}

// node returns the ID for label, creating the node on first sight.
func (s *synth) node(label string) (string, error) {
	if label == "" {
		return "", ErrEmptyLabel
	}
	if id, ok := s.ids[label]; ok {
		return id, nil
	}
	id, err := s.fresh(label)
	if err != nil {
		return "", err
	}
	s.ids[label] = id

	return id, nil
}

// fresh always creates a new node, even when label is already in use.
func (s *synth) fresh(label string) (string, error) {
	i := s.g.NodeCount()
	id := builder.OneBasedIDFn(i)
	x, y := core.GridPosition(i)
	if err := s.g.AddNode(core.Node{ID: id, Label: label, X: x, Y: y, Type: NodeType}); err != nil {
		return "", err
	}

	return id, nil
}

func (s *synth) link(source, target string, w float64) error {
	l := core.Link{Source: source, Target: target, Weight: w}
	if s.opts.Capacity != nil {
		c := *s.opts.Capacity
		l.Capacity = &c
	}
	if err := s.g.AddLink(l); err != nil {
		return fmt.Errorf("converters: %w", err)
	}
	return nil
}
