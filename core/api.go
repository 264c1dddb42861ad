// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; rely on it for quick admissions/diagnostics.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	// NodeCount is the number of stored nodes (Size()).
	NodeCount int

	// ArcCount is the number of stored ordered pairs (len(Edges())).
	ArcCount int

	// LoopCount is the number of nodes adjacent to themselves.
	LoopCount int

	// EdgeCount is the number of undirected connections: each self-loop once,
	// each distinct pair once. Exact only when the graph is symmetric.
	EdgeCount int

	// OrphanCount is the number of nodes stored with no neighbors. Always 0
	// unless NewGraph was seeded with empty sets.
	OrphanCount int
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Walk every node once, summing neighbor-set sizes.
//   - Stage 2: Classify self-loops and empty sets on the way.
//   - Stage 3: Derive the undirected count as loops + (arcs-loops)/2.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
//
// Notes:
//   - Run Check() first if the graph may have been seeded asymmetrically;
//     EdgeCount assumes every non-loop arc has a mirror.
func (g *Graph[N]) Stats() *GraphStats {
	stats := GraphStats{NodeCount: g.adj.len()}
	for k, s := range g.adj.all() {
		n := s.Len()
		stats.ArcCount += n
		if n == 0 {
			stats.OrphanCount++
		}
		if s.Has(k) {
			stats.LoopCount++
		}
	}
	stats.EdgeCount = stats.LoopCount + (stats.ArcCount-stats.LoopCount)/2

	return &stats
}
