// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Set, Entry and Edge types
// and the NewGraph constructor.
//
// Graph is NOT safe for concurrent use. Wrap it in Synchronized (or guard it
// with your own mutex) when several goroutines share one instance.
//
// Errors:
//
//	ErrAsymmetricEdge - integrity check found (k,v) stored without (v,k).
//	ErrOrphanNode     - integrity check found a node stored with no neighbors.
package core

import "errors"

// Sentinel errors reported by the integrity checker (Tidy, Check).
// Graph mutations and queries never fail.
var (
	// ErrAsymmetricEdge indicates v is stored in N(k) while k is missing from N(v).
	ErrAsymmetricEdge = errors.New("core: asymmetric edge")

	// ErrOrphanNode indicates a node is stored with an empty neighbor set.
	ErrOrphanNode = errors.New("core: orphan node")
)

// Entry is one (node, neighbor set) pair used to seed NewGraph.
type Entry[N comparable] struct {
	// Node is the mapping key.
	Node N

	// Neighbors is copied into the graph as-is; nil seeds an empty set.
	Neighbors *Set[N]
}

// Edge is an ordered pair (From, To) with To ∈ N(From).
//
// Edges are derived, not stored: an undirected connection between distinct
// nodes surfaces as two Edges, (a,b) and (b,a); a self-loop surfaces once.
type Edge[N comparable] struct {
	From N
	To   N
}

// Reverse returns the mirrored pair (To, From).
func (e Edge[N]) Reverse() Edge[N] {
	return Edge[N]{From: e.To, To: e.From}
}

// Graph is an undirected graph stored as a symmetric adjacency mapping
// node → neighbor set.
//
// Every mutating method leaves two invariants holding on return:
//   - symmetry: v ∈ N(k) ⇔ k ∈ N(v);
//   - no orphans: a node is stored iff its neighbor set is non-empty.
//
// Nodes and neighbors iterate in insertion order.
type Graph[N comparable] struct {
	// adj[k] = N(k); never aliased by any value handed to callers.
	adj *orderedMap[N, *Set[N]]
}

// NewGraph creates a Graph seeded with entries.
//
// Entries are written straight into the mapping, in order; a later entry for
// the same node overwrites the earlier one's set but keeps its position.
// No invariant repair happens here: seeding asymmetric or empty sets yields a
// graph that only subsequent mutations (and Tidy/Check) will reason about.
// Every seed set is copied, so the returned graph is independent of entries.
//
// Complexity: O(Σ|Neighbors|).
func NewGraph[N comparable](entries ...Entry[N]) *Graph[N] {
	g := &Graph[N]{adj: newOrderedMap[N, *Set[N]](len(entries))}
	for _, e := range entries {
		g.adj.put(e.Node, e.Neighbors.Clone())
	}
	if len(entries) > 0 {
		log.Tracef("seeded graph with %d entries (%d nodes)", len(entries), g.adj.len())
	}

	return g
}
