// File: methods.go
// Role: Node and link lifecycle plus read-only queries.
//
// Determinism:
//   - Nodes(), NodeIDs() and Links() return copies in insertion order.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.
package core

import "fmt"

// AddNode inserts n into the graph.
//
// Errors:
//   - ErrEmptyNodeID: if n.ID == "".
//   - ErrDuplicateNode: if a node with the same ID already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[n.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// AddLink appends l to the link sequence. Both endpoints must already exist.
//
// Errors:
//   - ErrNotFound: if l.Source or l.Target is not a node of g.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLink(l Link) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[l.Source]; !ok {
		return fmt.Errorf("%w: link source %q", ErrNotFound, l.Source)
	}
	if _, ok := g.index[l.Target]; !ok {
		return fmt.Errorf("%w: link target %q", ErrNotFound, l.Target)
	}
	if l.Capacity != nil {
		c := *l.Capacity // detach from the caller's pointer
		l.Capacity = &c
	}
	g.links = append(g.links, l)

	return nil
}

// AddEdge creates a link from→to with the given weight, adding either
// endpoint as a bare node (Label == ID) if it does not exist yet.
// This is the convenient form for tests and generators; request payloads go
// through AddNode/AddLink so that unknown endpoints are rejected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...LinkOption) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	for _, id := range [2]string{from, to} {
		if g.HasNode(id) {
			continue
		}
		if err := g.AddNode(Node{ID: id}); err != nil {
			return err
		}
	}

	l := Link{Source: from, Target: to, Weight: weight}
	for _, opt := range opts {
		opt(&l)
	}

	return g.AddLink(l)
}

// Directed reports whether links are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasNode reports whether id is a node of g (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Label returns the display label of id, or id itself when the node is
// unknown or has no label.
func (g *Graph) Label(id string) string {
	if n, ok := g.Node(id); ok {
		return n.DisplayLabel()
	}

	return id
}

// Nodes returns a copy of the node sequence.
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeIDs returns node IDs in insertion order.
// Complexity: O(V)
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// Links returns a copy of the link sequence.
// Complexity: O(L)
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, len(g.links))
	copy(out, g.links)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// LinkCount returns the number of stored links.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links)
}

// Labels maps every node ID to its display label.
func (g *Graph) Labels() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]string, len(g.nodes))
	for _, n := range g.nodes {
		out[n.ID] = n.DisplayLabel()
	}

	return out
}

// RequireNode returns ErrMissingParameter for an empty id and ErrNotFound
// for an id absent from g. what names the parameter in the error text.
func (g *Graph) RequireNode(what, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s", ErrMissingParameter, what)
	}
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %s %q", ErrNotFound, what, id)
	}

	return nil
}
