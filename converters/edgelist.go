package converters

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/graphtrace/core"
)

// Triple is one edge-list row. Source and Target are node labels.
// JSON form: ["A", "B", 3].
type Triple struct {
	Source string
	Target string
	Weight float64
}

// MarshalJSON encodes t as a three-element array.
func (t Triple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{t.Source, t.Target, t.Weight})
}

// UnmarshalJSON decodes a [source, target, weight] array.
func (t *Triple) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("converters: edge triple has %d elements, want 3", len(raw))
	}
	if err := json.Unmarshal(raw[0], &t.Source); err != nil {
		return fmt.Errorf("converters: edge source: %w", err)
	}
	if err := json.Unmarshal(raw[1], &t.Target); err != nil {
		return fmt.Errorf("converters: edge target: %w", err)
	}
	if err := json.Unmarshal(raw[2], &t.Weight); err != nil {
		return fmt.Errorf("converters: edge weight: %w", err)
	}

	return nil
}

// ToEdgeList emits one triple per stored link, in link order.
// Complexity: O(L).
func ToEdgeList(g *core.Graph) ([]Triple, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	labels := g.Labels()
	links := g.Links()
	out := make([]Triple, len(links))
	for i, l := range links {
		out[i] = Triple{Source: labels[l.Source], Target: labels[l.Target], Weight: l.Weight}
	}

	return out, nil
}

// FromEdgeList synthesises a graph from triples. Labels get IDs in order of
// first appearance (source before target); every triple becomes one link.
//
// Errors: ErrEmptyLabel, core.ErrInvalidWeight for NaN/Inf weights.
// Complexity: O(L).
func FromEdgeList(triples []Triple, directed bool, opts ...Option) (*core.Graph, error) {
	s := newSynth(directed, resolve(opts))
	for i, t := range triples {
		if math.IsNaN(t.Weight) || math.IsInf(t.Weight, 0) {
			return nil, fmt.Errorf("converters: %w: edge #%d", core.ErrInvalidWeight, i)
		}
		u, err := s.node(t.Source)
		if err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
		v, err := s.node(t.Target)
		if err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
		if err = s.link(u, v, t.Weight); err != nil {
			return nil, err
		}
	}

	return s.g, nil
}
