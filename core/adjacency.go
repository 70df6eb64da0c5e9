// File: adjacency.go
// Role: the Adjacency Builder.
//
// Ordering contract:
//   - Each node's neighbor list follows link insertion order.
//   - For an undirected link both the forward entry (source's list) and the
//     reverse entry (target's list) are appended while that link is visited,
//     before the next link is considered.
//   - DFS push order and BFS enqueue order are derived from this order, so it
//     must never be re-sorted.
package core

// Neighbor is one entry of a node's ordered neighbor list.
type Neighbor struct {
	ID       string
	Weight   float64
	Capacity float64
}

// Adjacency is the ordered per-node neighbor table derived from a Graph.
// It is a snapshot: later mutations of the Graph do not affect it.
type Adjacency struct {
	order []string
	out   map[string][]Neighbor
}

// Adjacency builds the ordered neighbor table for g.
// Complexity: O(V + L)
func (g *Graph) Adjacency() *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a := &Adjacency{
		order: make([]string, len(g.nodes)),
		out:   make(map[string][]Neighbor, len(g.nodes)),
	}
	for i, n := range g.nodes {
		a.order[i] = n.ID
		a.out[n.ID] = []Neighbor{}
	}
	for _, l := range g.links {
		c := l.Cap()
		a.out[l.Source] = append(a.out[l.Source], Neighbor{ID: l.Target, Weight: l.Weight, Capacity: c})
		if !g.directed {
			a.out[l.Target] = append(a.out[l.Target], Neighbor{ID: l.Source, Weight: l.Weight, Capacity: c})
		}
	}

	return a
}

// Order returns node IDs in graph order.
func (a *Adjacency) Order() []string { return a.order }

// Neighbors returns the ordered neighbor list of id (nil for unknown IDs).
// The returned slice must be treated as read-only.
func (a *Adjacency) Neighbors(id string) []Neighbor { return a.out[id] }

// Degree returns len(Neighbors(id)). On undirected graphs a self-loop
// contributes two entries, matching the textbook degree.
func (a *Adjacency) Degree(id string) int { return len(a.out[id]) }
