// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub node.
//   • Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the rim with Cycle(n-1) under the same cfg.
//   • Emits spokes Center-idFn(i) for i=0..n-2.
//   • The rim check covers ID capacity: n-1 above it → ErrIDSpaceExhausted.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjset/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		for i := 0; i < n-1; i++ {
			g.SetEdge(CenterVertexID, cfg.idFn(i))
		}

		return nil
	}
}
