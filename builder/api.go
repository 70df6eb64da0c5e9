// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// api.go: public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared in impl_*.go; Named maps CLI topology names onto them.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphtrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters and return sentinel
// errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topologies lists the names accepted by Named, in help-text order.
var Topologies = []string{"cycle", "path", "star", "wheel", "complete", "bipartite", "grid"}

// Named resolves a topology name and a size parameter n to a Constructor.
// "bipartite" builds K(n,n) and "grid" builds an n×n lattice.
func Named(topology string, n int) (Constructor, error) {
	switch strings.ToLower(topology) {
	case "cycle":
		return Cycle(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "bipartite":
		return CompleteBipartite(n, n), nil
	case "grid":
		return Grid(n, n), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, topology, strings.Join(Topologies, ", "))
	}
}

// addVertex inserts id at the next grid slot unless it already exists, so
// constructors can be composed over shared vertices.
func addVertex(g *core.Graph, id string) error {
	if g.HasNode(id) {
		return nil
	}
	x, y := core.GridPosition(g.NodeCount())

	return g.AddNode(core.Node{ID: id, X: x, Y: y})
}

// addEdge stores u–v once with a weight drawn from cfg. On directed graphs
// the reverse arc v→u is added too, so every topology stays traversable
// from any vertex.
func addEdge(g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddLink(core.Link{Source: u, Target: v, Weight: w}); err != nil {
		return err
	}
	if g.Directed() && u != v {
		return g.AddLink(core.Link{Source: v, Target: u, Weight: w})
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := addVertex(g, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}
