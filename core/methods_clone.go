// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves node order and every neighbor-set order.

package core

// Clone returns a deep copy of g. The two graphs share no storage.
//
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	c := &Graph[N]{adj: newOrderedMap[N, *Set[N]](g.adj.len())}
	for k, s := range g.adj.all() {
		c.adj.put(k, s.Clone())
	}

	return c
}

// Clear removes every node and edge. The instance stays usable.
//
// Complexity: O(V).
func (g *Graph[N]) Clear() {
	g.adj.reset()
}
