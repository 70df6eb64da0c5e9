package pgstore_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/internal/store/pgstore"
	"github.com/katalvlaran/graphtrace/internal/store/storetest"
)

// TestPGStore needs a scratch database; the table is dropped before and
// after the run.
func TestPGStore(t *testing.T) {
	url := os.Getenv("GRAPHTRACE_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("GRAPHTRACE_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()

	s, err := pgstore.Connect(ctx, url)
	require.NoError(t, err)
	require.NoError(t, s.DropSchema(ctx))
	require.NoError(t, s.CreateSchema(ctx))

	storetest.Run(t, s)
	// Registered after Run so it fires before Run's Close.
	t.Cleanup(func() { _ = s.DropSchema(context.Background()) })
}
