// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (copying topology through a filter).
// Determinism:
//   - Views keep the source's node and neighbor order.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only edges whose both endpoints pass keep; nodes left
//     without edges are not stored, matching the no-orphan rule.

package core

// InducedSubgraph returns a new Graph holding every edge (k,v) of g with
// keep(k) && keep(v). The result is built through SetEdge, so it is symmetric
// and orphan-free even when g was seeded inconsistently.
//
// Complexity: O(V + E) calls to keep.
func InducedSubgraph[N comparable](g *Graph[N], keep func(N) bool) *Graph[N] {
	out := NewGraph[N]()
	for k, s := range g.adj.all() {
		if !keep(k) {
			continue
		}
		for v := range s.All() {
			if keep(v) {
				out.SetEdge(k, v)
			}
		}
	}

	return out
}
