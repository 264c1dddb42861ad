// SPDX-License-Identifier: MIT
//
// File: tidy.go
// Role: Read-only integrity checker for the symmetry and no-orphan invariants.
// Policy:
//   - Best effort: every violation is reported, the walk never aborts early.
//   - Never mutates the graph; repairing is left to the caller.
// Determinism:
//   - Violations are reported in Edges() order.

package core

import (
	"errors"
	"fmt"
)

// Tidy walks the adjacency mapping and calls report once per violation:
//   - an error wrapping ErrOrphanNode for each node stored with no neighbors;
//   - an error wrapping ErrAsymmetricEdge for each stored (k,v) whose mirror
//     (v,k) is missing, including when v itself is not stored.
//
// report may be nil for a pure check. Tidy returns true iff nothing was found.
// Graphs built only through SetEdge/RemoveEdge/DeleteNode always pass; only
// inconsistent NewGraph seeds can fail.
//
// Complexity: O(V + E).
func (g *Graph[N]) Tidy(report func(error)) bool {
	clean := true
	emit := func(err error) {
		clean = false
		log.Debugf("integrity violation: %v", err)
		if report != nil {
			report(err)
		}
	}

	for k, s := range g.adj.all() {
		if s.Len() == 0 {
			emit(fmt.Errorf("core: node %v has no neighbors: %w", k, ErrOrphanNode))
			continue
		}
		for v := range s.All() {
			if mirror, ok := g.adj.get(v); ok && mirror.Has(k) {
				continue
			}
			emit(fmt.Errorf("core: edge (%v,%v) has no mirror (%v,%v): %w", k, v, v, k, ErrAsymmetricEdge))
		}
	}

	return clean
}

// Check runs Tidy and joins every violation into one error; nil when clean.
// Use errors.Is against ErrAsymmetricEdge / ErrOrphanNode to classify.
func (g *Graph[N]) Check() error {
	var errs []error
	g.Tidy(func(err error) { errs = append(errs, err) })

	return errors.Join(errs...)
}
