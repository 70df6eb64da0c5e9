// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_wheel.go: Wheel(n): W_n = C_{n−1} plus a hub joined to every rim vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodWheel  = "Wheel"
	minWheelNode = 4
)

// Wheel returns a Constructor for W_n: rim edges first, then spokes from
// CenterID. W_n has 2(n−1) edges.
// Errors: ErrTooFewVertices if n < 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNode {
			return fmt.Errorf("%s: n=%d < %d: %w", methodWheel, n, minWheelNode, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := addVertex(g, CenterID); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, CenterID, cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
