// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • n above the ID scheme capacity → ErrIDSpaceExhausted (no node is added).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/adjset/core"

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := makeIDs(methodCycle, cfg, n)
		if err != nil {
			return err
		}
		addPathEdges(g, ids)
		// Close the ring.
		g.SetEdge(ids[n-1], ids[0])

		return nil
	}
}
