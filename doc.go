// SPDX-License-Identifier: MIT

// Package adjset is an in-memory undirected graph stored as a symmetric
// mapping from each node to the set of its neighbors.
//
// 🚀 What is adjset?
//
//	A small, generic library built around two guarantees that every
//	mutation preserves:
//		• Symmetry: b ∈ N(a) ⇔ a ∈ N(b), a self-loop is its own mirror
//		• No orphans: a node is stored iff it has at least one neighbor
//
// Removing the last edge of a node removes the node; deleting a node removes
// it from every neighbor's set and drops neighbors that become isolated.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/           - Graph[N], Set[N], Entry, Edge, integrity checks, Synchronized
//	builder/        - deterministic topology fixtures (path, cycle, wheel, grid, ...)
//	seedfile/       - YAML/JSON seed documents to and from core.Graph[string]
//	cmd/adjgraph/   - command-line tool to build, edit, check and print graphs
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph[string]()
//	g.SetEdge("A", "B")
//	g.SetEdge("B", "D")
//	g.SetEdge("D", "C")
//	g.SetEdge("C", "A")
//	g.DeleteNode("D")   // B and C keep their edge to A
//	g.RemoveEdge("A", "B") // B has no neighbors left and disappears
//
// Graph is not safe for concurrent use; wrap it with core.Synchronized when
// several goroutines share an instance.
package adjset
