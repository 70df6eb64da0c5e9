// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_complete.go: Complete(n): K_n, every unordered pair joined once.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodComplete  = "Complete"
	minCompleteNode = 1
)

// Complete returns a Constructor for K_n. Pairs are emitted in (i, j>i)
// order, giving n(n−1)/2 edges.
// Errors: ErrTooFewVertices if n < 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNode {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteNode, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
