// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): hub "Center" plus n-1 leaves.
//   • n above the ID scheme capacity → ErrIDSpaceExhausted (no node is added).
//   • Leaves use idFn(1..n-1); spokes are emitted in leaf index order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/adjset/core"

// Star returns a Constructor that builds a star with hub CenterVertexID.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		ids, err := makeIDs(methodStar, cfg, n)
		if err != nil {
			return err
		}
		// ids[0] is unused: the hub is named CenterVertexID.
		for _, leaf := range ids[1:] {
			g.SetEdge(CenterVertexID, leaf)
		}

		return nil
	}
}
