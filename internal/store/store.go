// Package store defines the single-snapshot persistence used by the save and
// load endpoints. Backends live in the memstore, badgerstore and pgstore
// subpackages.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

// Key names the one snapshot every backend keeps.
const Key = "graph"

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("store: no saved graph")

// Store persists one graph snapshot. Save replaces any previous snapshot.
// Implementations are safe for concurrent use.
type Store interface {
	Save(ctx context.Context, g *core.Graph) error
	Load(ctx context.Context) (*core.Graph, error)
	Close() error
}

// Encode serialises g in its document form.
func Encode(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, errors.New("store: nil graph")
	}
	data, err := json.Marshal(g.Document())
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}

	return data, nil
}

// Decode rebuilds a graph from bytes produced by Encode.
func Decode(data []byte) (*core.Graph, error) {
	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}
	g, err := core.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}

	return g, nil
}
