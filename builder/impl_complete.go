// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); K_1 would store nothing.
//   • n above the ID scheme capacity → ErrIDSpaceExhausted (no node is added).
//   • Emits every unordered pair (i<j) with i ascending, then j ascending.
//
// Complexity: O(n²) time, O(n) space for the ID slice.

package builder

import "github.com/katalvlaran/adjset/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := makeIDs(methodComplete, cfg, n)
		if err != nil {
			return err
		}
		addCompleteEdges(g, ids)

		return nil
	}
}
