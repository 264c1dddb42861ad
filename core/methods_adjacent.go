// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbor-set snapshots.
//
// Every container handed out here is a copy; callers may mutate it freely.
package core

import "iter"

// Get returns a copy of N(k). ok is false and the set nil when k is absent.
//
// Complexity: O(deg(k)).
func (g *Graph[N]) Get(k N) (neighbors *Set[N], ok bool) {
	s, ok := g.adj.get(k)
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// All yields each stored node with a copy of its neighbor set, in insertion order.
func (g *Graph[N]) All() iter.Seq2[N, *Set[N]] {
	return func(yield func(N, *Set[N]) bool) {
		for k, s := range g.adj.all() {
			if !yield(k, s.Clone()) {
				return
			}
		}
	}
}
