// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply runs the same pipeline against a caller-owned graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including node and neighbor insertion order.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjset/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors (no panics).
//   - Mutate g only through SetEdge, so the symmetric/no-orphan invariants hold.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply resolves bopts once and runs every constructor against g, in order.
// Constructors compose: shared IDs merge into one topology.
//
// Errors:
//   - nil g or nil constructor → ErrConstructFailed.
//   - first constructor error, returned as-is; earlier constructors stay applied.
func Apply(g *core.Graph[string], bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		before := g.Size()
		if err := fn(g, cfg); err != nil {
			return err
		}
		log.Debugf("constructor #%d: %d -> %d nodes", i, before, g.Size())
	}

	return nil
}
