// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_path.go: Path(n): P_n, the chain 0–1–…–(n−1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodPath  = "Path"
	minPathNode = 2
)

// Path returns a Constructor for P_n. Its two endpoints are the only
// odd-degree vertices, so P_n has an Euler trail but no circuit.
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNode {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathNode, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
