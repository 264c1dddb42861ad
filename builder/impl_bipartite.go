// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are leftPrefix+i, right IDs rightPrefix+j (cfg.idFn is not used).
//   • Emits L_i-R_j for i ascending, then j ascending.
//
// Complexity: O(n1·n2) time, O(n1+n2) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjset/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)
		for _, u := range left {
			for _, v := range right {
				g.SetEdge(u, v)
			}
		}

		return nil
	}
}
