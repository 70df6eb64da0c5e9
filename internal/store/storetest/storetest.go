// Package storetest holds the behaviour every store.Store backend must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/internal/store"
)

// Run exercises s against an empty backend. s is closed afterwards.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	t.Cleanup(func() { _ = s.Close() })

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, store.ErrNoSnapshot)

	first := core.NewGraph(core.WithDirected(true))
	require.NoError(t, first.AddNode(core.Node{ID: "1", Label: "Hanoi", X: 100, Y: 100, Type: "pc"}))
	require.NoError(t, first.AddEdge("1", "2", 3, core.WithCapacity(8)))
	require.NoError(t, s.Save(ctx, first))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Document(), got.Document())

	// A second Save replaces the first snapshot.
	second := core.NewGraph()
	require.NoError(t, second.AddEdge("A", "B", 1))
	require.NoError(t, s.Save(ctx, second))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.Directed())
	assert.Equal(t, []string{"A", "B"}, got.NodeIDs())

	// Loaded graphs are independent copies.
	require.NoError(t, got.AddNode(core.Node{ID: "C"}))
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, again.NodeCount())

	require.Error(t, s.Save(ctx, nil))
}
