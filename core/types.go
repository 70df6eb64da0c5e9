// Package core declares Node, Link, Graph, GraphOption, LinkOption and the
// NewGraph constructor.
package core

import "sync"

// Node represents a vertex in the graph.
//
// ID uniquely identifies the node. Label is the human-readable name used in
// step messages; it defaults to ID. X, Y and Type are carried for
// presentation and are never read by any algorithm.
type Node struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Type  string  `json:"type,omitempty" yaml:"type,omitempty"`
}

// DisplayLabel returns Label, or ID when Label is empty.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}

	return n.Label
}

// Link represents one stored connection Source→Target.
//
// For undirected graphs a Link is usable in both directions but is stored
// exactly once. Capacity is optional; Cap() falls back to Weight.
type Link struct {
	// Source is the ID of the origin node.
	Source string `json:"source" yaml:"source"`

	// Target is the ID of the destination node.
	Target string `json:"target" yaml:"target"`

	// Weight is the traversal cost.
	Weight float64 `json:"weight" yaml:"weight"`

	// Capacity is the max-flow capacity; nil means "same as Weight".
	Capacity *float64 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Cap returns the effective capacity of the link.
func (l Link) Cap() float64 {
	if l.Capacity == nil {
		return l.Weight
	}

	return *l.Capacity
}

// GraphOption configures a Graph before any node is added.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of every link in the graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// LinkOption configures a Link created through AddEdge.
type LinkOption func(l *Link)

// WithCapacity stamps an explicit capacity on the link.
func WithCapacity(c float64) LinkOption {
	return func(l *Link) {
		v := c
		l.Capacity = &v
	}
}

// Graph is the normalized in-memory graph.
//
// mu guards every field below it. Nodes and links keep insertion order;
// index maps a node ID to its position in nodes.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes []Node
	links []Link
	index map[string]int
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make([]Node, 0),
		links: make([]Link, 0),
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
