// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() follows node insertion order.
//
// Invariants:
//   - DeleteNode cascades: every neighbor left without neighbors is deleted too.
package core

// HasNode reports whether k is stored.
//
// Complexity: O(1).
func (g *Graph[N]) HasNode(k N) bool {
	return g.adj.has(k)
}

// DeleteNode removes k together with every edge incident to it.
//
// Each neighbor v loses k from N(v) and is itself deleted when that empties
// N(v). The returned set is a snapshot of N(k) taken before deletion (a
// self-loop shows up as k itself); ok is false and the set nil when k was
// not stored.
//
// Complexity: O(deg(k)).
func (g *Graph[N]) DeleteNode(k N) (neighbors *Set[N], ok bool) {
	s, ok := g.adj.get(k)
	if !ok {
		return nil, false
	}
	snapshot := s.Clone()

	dropped := 0
	for v := range snapshot.All() {
		if v == k {
			continue
		}
		if g.detach(v, k) {
			dropped++
		}
	}
	g.adj.remove(k)
	if dropped > 0 {
		log.Tracef("deleting node %v dropped %d isolated neighbors", k, dropped)
	}

	return snapshot, true
}

// Nodes returns a snapshot of every stored node, in insertion order.
//
// Complexity: O(V).
func (g *Graph[N]) Nodes() *Set[N] {
	out := NewSet[N]()
	for k := range g.adj.keys() {
		out.Add(k)
	}

	return out
}

// Size returns the number of stored nodes.
//
// Complexity: O(1).
func (g *Graph[N]) Size() int {
	return g.adj.len()
}

// Degree returns |N(k)|, or 0 when k is absent. A self-loop counts once.
//
// Complexity: O(1).
func (g *Graph[N]) Degree(k N) int {
	s, _ := g.adj.get(k)

	return s.Len()
}
