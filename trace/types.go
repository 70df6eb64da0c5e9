package trace

import (
	"maps"
	"slices"
)

// Edge identifies one directed use of a link, optionally with its weight.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight,omitempty"`
}

// HeapEntry is one element of a priority queue as shown in a snapshot.
// From is empty for node-keyed queues (Dijkstra) and holds the tree-side
// endpoint for edge-keyed queues (Prim).
type HeapEntry struct {
	Priority float64 `json:"priority"`
	Node     string  `json:"node"`
	From     string  `json:"from,omitempty"`
}

// Bipartition holds the two colour classes of a bipartite check.
type Bipartition struct {
	SetA []string `json:"setA"`
	SetB []string `json:"setB"`
}

// FlowEdge is a link carrying strictly positive flow in a max-flow result.
type FlowEdge struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Flow     float64 `json:"flow"`
	Capacity float64 `json:"capacity"`
}

// Snapshot is the state attached to a Step. Every field is optional; an
// algorithm fills only what is meaningful at that moment.
type Snapshot struct {
	CurrentNode  string             `json:"currentNodeId,omitempty"`
	CurrentEdge  *Edge              `json:"currentLinkId,omitempty"`
	Visited      []string           `json:"visited,omitempty"`
	Queue        []string           `json:"queue,omitempty"`
	Stack        []string           `json:"stack,omitempty"`
	Heap         []HeapEntry        `json:"pq,omitempty"`
	Distances    map[string]float64 `json:"distances,omitempty"`
	MSTEdges     []Edge             `json:"mstLinks,omitempty"`
	Flow         map[string]float64 `json:"flowDetails,omitempty"`
	Path         []string           `json:"path,omitempty"`
	VisitedEdges []Edge             `json:"visitedLinks,omitempty"`
	Colors       *Bipartition       `json:"bipartiteSets,omitempty"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		CurrentNode:  s.CurrentNode,
		Visited:      slices.Clone(s.Visited),
		Queue:        slices.Clone(s.Queue),
		Stack:        slices.Clone(s.Stack),
		Heap:         slices.Clone(s.Heap),
		Distances:    maps.Clone(s.Distances),
		MSTEdges:     slices.Clone(s.MSTEdges),
		Flow:         maps.Clone(s.Flow),
		Path:         slices.Clone(s.Path),
		VisitedEdges: slices.Clone(s.VisitedEdges),
	}
	if s.CurrentEdge != nil {
		e := *s.CurrentEdge
		out.CurrentEdge = &e
	}
	if s.Colors != nil {
		out.Colors = &Bipartition{SetA: slices.Clone(s.Colors.SetA), SetB: slices.Clone(s.Colors.SetB)}
	}

	return out
}

// Step is one observable micro-event. The snapshot fields are flattened into
// the step's JSON object next to "log".
type Step struct {
	Message string `json:"log"`
	Snapshot
}
