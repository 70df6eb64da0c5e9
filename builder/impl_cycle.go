// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_cycle.go: Cycle(n): C_n, the ring 0–1–…–(n−1)–0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodCycle  = "Cycle"
	minCycleNode = 3
)

// Cycle returns a Constructor for C_n. Every vertex has degree 2, so the
// result always admits an Euler circuit.
// Errors: ErrTooFewVertices if n < 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNode {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleNode, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
