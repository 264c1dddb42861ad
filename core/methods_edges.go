// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle (SetEdge/RemoveEdge) and edge queries.
//
// Determinism:
//   - Edges()/EdgeSeq() walk nodes in insertion order, then each neighbor set in insertion order.
//
// Invariants:
//   - Both halves of an edge are written or removed inside the same call.
//   - A neighbor set emptied by a removal is dropped together with its node.
package core

import "iter"

// SetEdge makes k and v mutually adjacent, creating either node if absent.
//
// Idempotent; k == v stores a self-loop (one member, its own mirror).
//
// Complexity: O(1) amortized.
func (g *Graph[N]) SetEdge(k, v N) {
	g.attach(k, v)
	g.attach(v, k)
}

// RemoveEdge removes the adjacency between k and v in both directions.
//
// A side whose node is absent is skipped; a side whose set becomes empty is
// deleted with its node. Calling it for a missing edge is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) RemoveEdge(k, v N) {
	g.detach(k, v)
	g.detach(v, k)
}

// HasEdge reports whether v is currently in N(k). False when k is absent.
//
// Complexity: O(1).
func (g *Graph[N]) HasEdge(k, v N) bool {
	s, ok := g.adj.get(k)

	return ok && s.Has(v)
}

// Edges returns every stored pair (k,v) with v ∈ N(k).
//
// A connection between distinct nodes appears twice, once per direction;
// a self-loop appears once. The slice is freshly allocated.
//
// Complexity: O(V + E).
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, g.EdgeCount())
	for e := range g.EdgeSeq() {
		out = append(out, e)
	}

	return out
}

// EdgeSeq lazily yields the same pairs, in the same order, as Edges.
// Mutating the graph while iterating is allowed; removed pairs are not produced.
func (g *Graph[N]) EdgeSeq() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		for k, s := range g.adj.all() {
			for v := range s.All() {
				if !yield(Edge[N]{From: k, To: v}) {
					return
				}
			}
		}
	}
}

// EdgeCount returns the number of stored ordered pairs, i.e. len(Edges()).
//
// Complexity: O(V).
func (g *Graph[N]) EdgeCount() int {
	n := 0
	for _, s := range g.adj.all() {
		n += s.Len()
	}

	return n
}

// attach adds v to N(k), creating k's entry on first use.
func (g *Graph[N]) attach(k, v N) {
	s, ok := g.adj.get(k)
	if !ok {
		s = NewSet(v)
		g.adj.put(k, s)
		return
	}
	s.Add(v)
}

// detach removes v from N(k) and drops k once its set is empty.
// Reports whether k's entry was dropped.
func (g *Graph[N]) detach(k, v N) bool {
	s, ok := g.adj.get(k)
	if !ok {
		return false
	}
	s.Delete(v)
	if s.Len() > 0 {
		return false
	}
	g.adj.remove(k)

	return true
}
