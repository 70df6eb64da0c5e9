package core

import (
	"encoding/json"
	"fmt"
)

// Document is the serialized form of a Graph:
//
//	{"nodes":[...], "links":[...], "isDirected": false}
//
// It is also the YAML form used for graph files.
type Document struct {
	Nodes      []Node `json:"nodes" yaml:"nodes"`
	Links      []Link `json:"links" yaml:"links"`
	IsDirected bool   `json:"isDirected" yaml:"isDirected"`
}

// FromDocument builds a validated Graph from d. Links must reference
// declared nodes; node IDs must be unique and non-empty.
func FromDocument(d Document) (*Graph, error) {
	g := NewGraph(WithDirected(d.IsDirected))
	for _, n := range d.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for i, l := range d.Links {
		if err := g.AddLink(l); err != nil {
			return nil, fmt.Errorf("link #%d: %w", i, err)
		}
	}

	return g, nil
}

// Document returns the serializable snapshot of g.
func (g *Graph) Document() Document {
	return Document{Nodes: g.Nodes(), Links: g.Links(), IsDirected: g.Directed()}
}

// MarshalJSON encodes g as a Document.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Document())
}

// UnmarshalJSON decodes a Document into g, replacing its contents.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	built, err := FromDocument(d)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.directed = built.directed
	g.nodes = built.nodes
	g.links = built.links
	g.index = built.index

	return nil
}
