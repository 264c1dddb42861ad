// SPDX-License-Identifier: MIT

// Package core provides an in-memory undirected graph stored as a symmetric
// adjacency mapping: node → set of neighbor nodes.
//
// The Graph[N] type accepts any comparable node type and keeps two
// invariants across every mutation:
//
//   - Symmetry - v ∈ N(k) ⇔ k ∈ N(v). SetEdge/RemoveEdge always touch both halves.
//   - No orphans - a node is stored iff it has at least one neighbor. Removing
//     the last edge of a node removes the node; DeleteNode cascades that rule to
//     every neighbor it leaves isolated.
//
// Neighbor sets have set semantics (no duplicates). Self-loops are allowed when
// inserted explicitly and are their own mirror.
//
// Core Methods:
//
//	// Construction
//	NewGraph(entries ...Entry[N]) *Graph[N]   // seeds the mapping as-is, no repair
//
//	// Edge lifecycle
//	SetEdge(k, v N)                           // O(1) amortized, idempotent
//	RemoveEdge(k, v N)                        // O(1) amortized, no-op when missing
//
//	// Node lifecycle
//	DeleteNode(k N) (*Set[N], bool)           // O(deg k), returns pre-deletion neighbors
//	Clear()                                   // O(V)
//
//	// Query (every container returned is a copy)
//	HasNode(k N) bool                         // O(1)
//	HasEdge(k, v N) bool                      // O(1)
//	Get(k N) (*Set[N], bool)                  // O(deg k)
//	Nodes() *Set[N]                           // O(V), insertion order
//	Edges() []Edge[N]                         // O(V+E), both directions per edge
//	EdgeSeq() iter.Seq[Edge[N]]               // lazy Edges
//	All() iter.Seq2[N, *Set[N]]               // node + neighbor snapshot
//	Size(), Degree(k), EdgeCount(), Stats()
//
//	// Integrity (read-only)
//	Tidy(report func(error)) bool             // reports ErrAsymmetricEdge / ErrOrphanNode
//	Check() error                             // errors.Join of Tidy findings
//
//	// Copies and views
//	Clone() *Graph[N]
//	InducedSubgraph(g, keep) *Graph[N]
//
// Ordering:
//
// Nodes and neighbor sets iterate in insertion order, so Nodes(), Edges() and
// Tidy reports are reproducible for a given sequence of calls.
//
// Concurrency:
//
// Graph is not safe for concurrent use; no method is atomic with respect to
// another. Share an instance only behind your own mutex or through
// Synchronized, which wraps the same operation set in a sync.RWMutex.
//
// Logging:
//
// The package logs through btclog and is silent until UseLogger is called.
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.SetEdge("a", "b")
//	g.HasEdge("b", "a")        // true
//	g.RemoveEdge("a", "b")
//	g.Size()                   // 0: both nodes became orphans and were dropped
package core
