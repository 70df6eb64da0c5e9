// Package memstore keeps the snapshot in process memory.
package memstore

import (
	"context"
	"sync"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/internal/store"
)

// Store holds the encoded snapshot so that callers never share a *core.Graph.
type Store struct {
	mu   sync.RWMutex
	data []byte
}

var _ store.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store { return &Store{} }

// Save replaces the snapshot.
func (s *Store) Save(_ context.Context, g *core.Graph) error {
	data, err := store.Encode(g)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	return nil
}

// Load returns a fresh copy of the snapshot or store.ErrNoSnapshot.
func (s *Store) Load(_ context.Context) (*core.Graph, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()
	if data == nil {
		return nil, store.ErrNoSnapshot
	}

	return store.Decode(data)
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
