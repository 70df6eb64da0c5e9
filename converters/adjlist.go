package converters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/graphtrace/core"
)

// Entry is one neighbour of an adjacency-list key. JSON form: ["B", 3].
type Entry struct {
	Neighbor string
	Weight   float64
}

// MarshalJSON encodes e as a two-element array.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Neighbor, e.Weight})
}

// UnmarshalJSON decodes a [neighbor, weight] array.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("converters: adjacency entry has %d elements, want 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.Neighbor); err != nil {
		return fmt.Errorf("converters: adjacency neighbor: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Weight); err != nil {
		return fmt.Errorf("converters: adjacency weight: %w", err)
	}

	return nil
}

// AdjacencyList maps a node label to its neighbours, preserving key order.
type AdjacencyList struct {
	m *orderedmap.OrderedMap[string, []Entry]
}

// NewAdjacencyList returns an empty list.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{m: orderedmap.New[string, []Entry]()}
}

// Set stores entries under key, appending key on first use.
func (a *AdjacencyList) Set(key string, entries []Entry) {
	a.m.Set(key, entries)
}

// Get returns the entries of key.
func (a *AdjacencyList) Get(key string) ([]Entry, bool) {
	return a.m.Get(key)
}

// Len returns the number of keys.
func (a *AdjacencyList) Len() int { return a.m.Len() }

// Keys returns the keys in insertion order.
func (a *AdjacencyList) Keys() []string {
	keys := make([]string, 0, a.m.Len())
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// MarshalJSON writes the keys in insertion order.
func (a *AdjacencyList) MarshalJSON() ([]byte, error) {
	if a == nil || a.m == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for p := a.m.Oldest(); p != nil; p = p.Next() {
		if p != a.m.Oldest() {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		entries := p.Value
		if entries == nil {
			entries = []Entry{}
		}
		v, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping its key order.
func (a *AdjacencyList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("converters: adjacency list must be a JSON object")
	}
	a.m = orderedmap.New[string, []Entry]()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var entries []Entry
		if err = dec.Decode(&entries); err != nil {
			return fmt.Errorf("converters: adjacency list key %q: %w", key, err)
		}
		a.m.Set(key, entries)
	}
	_, err = dec.Token()

	return err
}

// ToAdjacencyList renders g keyed by node label. Keys and neighbours are in
// natural order (neighbours with equal labels by weight); isolated nodes
// appear with an empty list. Undirected links are listed under both
// endpoints. Nodes sharing a label share one key.
// Complexity: O(V log V + L log L).
func ToAdjacencyList(g *core.Graph) (*AdjacencyList, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	labels := g.Labels()
	adj := g.Adjacency()

	keys := make([]string, 0, len(labels))
	grouped := make(map[string][]Entry, len(labels))
	for _, id := range adj.Order() {
		key := labels[id]
		if _, ok := grouped[key]; !ok {
			keys = append(keys, key)
			grouped[key] = []Entry{}
		}
		for _, nb := range adj.Neighbors(id) {
			grouped[key] = append(grouped[key], Entry{Neighbor: labels[nb.ID], Weight: nb.Weight})
		}
	}
	core.SortNatural(keys)

	out := NewAdjacencyList()
	for _, key := range keys {
		entries := grouped[key]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Neighbor != entries[j].Neighbor {
				return core.NaturalLess(entries[i].Neighbor, entries[j].Neighbor)
			}
			return entries[i].Weight < entries[j].Weight
		})
		out.Set(key, entries)
	}

	return out, nil
}

// FromAdjacencyList synthesises a graph from list. IDs go to keys first, in
// key order, then to neighbours not seen as keys. A link already emitted
// (in either direction when undirected) is not emitted again.
//
// Errors: ErrEmptyLabel, core.ErrInvalidWeight for NaN/Inf weights.
// Complexity: O(V + L).
func FromAdjacencyList(list *AdjacencyList, directed bool, opts ...Option) (*core.Graph, error) {
	s := newSynth(directed, resolve(opts))
	if list == nil || list.m == nil {
		return s.g, nil
	}
	for _, key := range list.Keys() {
		if _, err := s.node(key); err != nil {
			return nil, err
		}
	}

	type pair struct{ u, v string }
	seen := make(map[pair]bool)
	for p := list.m.Oldest(); p != nil; p = p.Next() {
		for _, e := range p.Value {
			if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return nil, fmt.Errorf("converters: %w: %s → %s", core.ErrInvalidWeight, p.Key, e.Neighbor)
			}
			v, err := s.node(e.Neighbor)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", p.Key, err)
			}
			k := pair{p.Key, e.Neighbor}
			if !directed && core.NaturalLess(k.v, k.u) {
				k.u, k.v = k.v, k.u
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			if err = s.link(s.ids[p.Key], v, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return s.g, nil
}
