// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • n above the ID scheme capacity → ErrIDSpaceExhausted (no node is added).
//   • Emits edges idFn(i-1)-idFn(i) for i=1..n-1, so nodes appear in index order.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import "github.com/katalvlaran/adjset/core"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids, err := makeIDs(methodPath, cfg, n)
		if err != nil {
			return err
		}
		addPathEdges(g, ids)

		return nil
	}
}
