package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/internal/config"
	"github.com/katalvlaran/graphtrace/internal/logging"
	"github.com/katalvlaran/graphtrace/internal/store/badgerstore"
	"github.com/katalvlaran/graphtrace/internal/store/memstore"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

// resetFlags restores every flag to its default so that package-level flag
// variables do not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGen(t *testing.T) {
	out, err := execute(t, "gen", "cycle", "4")
	require.NoError(t, err)

	var doc wire.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Nodes, 4)
	assert.Len(t, doc.Links, 4)
	assert.False(t, doc.IsDirected)
	for _, l := range doc.Links {
		assert.Equal(t, 1.0, l.Weight)
	}

	out, err = execute(t, "gen", "grid", "2", "-o", "yaml", "--min-weight", "2", "--max-weight", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "isDirected: false")
	g, err := wire.DecodeGraph([]byte(out), wire.YAML)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 4)
	for _, l := range g.Links {
		assert.GreaterOrEqual(t, l.Weight, 2.0)
		assert.LessOrEqual(t, l.Weight, 5.0)
	}
}

func TestGen_IDSchemesAndRealWeights(t *testing.T) {
	out, err := execute(t, "gen", "path", "28", "--ids", "excel")
	require.NoError(t, err)
	g, err := wire.DecodeGraph([]byte(out), wire.JSON)
	require.NoError(t, err)
	assert.Equal(t, "A", g.Nodes[0].ID)
	assert.Equal(t, "AB", g.Nodes[27].ID)

	out, err = execute(t, "gen", "path", "3", "--ids", "one")
	require.NoError(t, err)
	g, err = wire.DecodeGraph([]byte(out), wire.JSON)
	require.NoError(t, err)
	assert.Equal(t, "1", g.Nodes[0].ID)

	out, err = execute(t, "gen", "cycle", "5", "--real-weights", "--min-weight", "1", "--max-weight", "3", "--seed", "7")
	require.NoError(t, err)
	g, err = wire.DecodeGraph([]byte(out), wire.JSON)
	require.NoError(t, err)
	fractional := false
	for _, l := range g.Links {
		assert.GreaterOrEqual(t, l.Weight, 1.0)
		assert.LessOrEqual(t, l.Weight, 3.0)
		if l.Weight != float64(int(l.Weight)) {
			fractional = true
		}
	}
	assert.True(t, fractional, "real-valued weights expected")

	_, err = execute(t, "gen", "cycle", "4", "--ids", "roman")
	assert.Error(t, err)
}

func TestGen_Errors(t *testing.T) {
	_, err := execute(t, "gen", "moebius", "4")
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)

	_, err = execute(t, "gen", "cycle", "four")
	assert.Error(t, err)

	_, err = execute(t, "gen", "cycle", "2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = execute(t, "gen", "path", "3", "--min-weight", "5", "--max-weight", "1")
	assert.Error(t, err)

	_, err = execute(t, "gen", "path", "3", "--min-weight", "-2", "--max-weight", "1")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	graph := writeTemp(t, "g.yaml", `
isDirected: false
nodes:
  - {id: A}
  - {id: B}
  - {id: C}
links:
  - {source: A, target: B, weight: 1}
  - {source: B, target: C, weight: 2}
`)

	out, err := execute(t, "run", "dijkstra", "--graph", graph, "--start", "A", "--end", "C")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "dijkstra", res["algorithm"])
	assert.Equal(t, []any{"A", "B", "C"}, res["path"])

	out, err = execute(t, "run", "bipartite", "-g", graph, "--logs")
	require.NoError(t, err)
	assert.Equal(t, "Is a bipartite graph", strings.TrimSpace(out))

	_, err = execute(t, "run", "bfs", "-g", graph)
	assert.ErrorIs(t, err, core.ErrMissingParameter)

	_, err = execute(t, "run", "bfs")
	assert.Error(t, err, "--graph is required")
}

func TestConvert(t *testing.T) {
	graph := writeTemp(t, "g.json",
		`{"nodes":[{"id":"A"},{"id":"B"}],"links":[{"source":"A","target":"B","weight":4}],"isDirected":false}`)

	out, err := execute(t, "convert", "--to", "matrix", "--graph", graph)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":["A","B"],"labels":["A","B"],"matrix":[[0,4],[4,0]]}`, out)

	out, err = execute(t, "convert", "--to", "edge_list", "-g", graph)
	require.NoError(t, err)
	assert.JSONEq(t, `[["A","B",4]]`, out)

	input := writeTemp(t, "edges.json", `[["Hub","Leaf",2]]`)
	out, err = execute(t, "convert", "--from", "edge_list", "-i", input, "--directed", "--capacity", "100", "-o", "yaml")
	require.NoError(t, err)
	g, err := wire.DecodeGraph([]byte(out), wire.YAML)
	require.NoError(t, err)
	assert.True(t, g.IsDirected)
	require.Len(t, g.Links, 1)
	require.NotNil(t, g.Links[0].Capacity)
	assert.Equal(t, 100.0, *g.Links[0].Capacity)
	assert.Equal(t, "Hub", g.Nodes[0].Label)

	matrix := writeTemp(t, "m.json", `[[0,1],[1,0]]`)
	out, err = execute(t, "convert", "--from", "matrix", "-i", matrix, "--labels", "P,Q")
	require.NoError(t, err)
	assert.Contains(t, out, `"label": "Q"`)
}

func TestConvert_Errors(t *testing.T) {
	graph := writeTemp(t, "g.json", `{"nodes":[],"links":[],"isDirected":false}`)

	_, err := execute(t, "convert")
	assert.Error(t, err, "one of --to/--from is required")

	_, err = execute(t, "convert", "--to", "matrix", "--from", "matrix")
	assert.Error(t, err)

	_, err = execute(t, "convert", "--to", "csv", "-g", graph)
	assert.Error(t, err)

	_, err = execute(t, "convert", "--from", "matrix")
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	st, err := openStore(context.Background(), config.StoreConfig{Backend: config.BackendMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memstore.Store{}, st)

	cfg := config.StoreConfig{Backend: config.BackendBadger, BadgerPath: filepath.Join(t.TempDir(), "db")}
	st, err = openStore(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &badgerstore.Store{}, st)
	require.NoError(t, st.Close())
}

func TestServe_BadConfig(t *testing.T) {
	path := writeTemp(t, "c.yaml", "store:\n  backend: redis\n")
	_, err := execute(t, "serve", "--config", path)
	assert.Error(t, err)
}
