// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_star.go: Star(n): one hub "Center" joined to n−1 leaves.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodStar  = "Star"
	minStarNode = 2

	// CenterID is the hub vertex of Star and Wheel.
	CenterID = "Center"
)

// Star returns a Constructor for S_n: the hub CenterID plus leaves
// cfg.idFn(0..n-2). The hub is added first.
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNode {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarNode, ErrTooFewVertices)
		}
		if err := addVertex(g, CenterID); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		leaves, err := addVertices(g, cfg, n-1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, CenterID, leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
