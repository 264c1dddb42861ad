// SPDX-License-Identifier: MIT

// Package seedfile reads and writes adjacency-set graphs as YAML documents.
//
// A seed document has two optional top-level keys:
//
//	entries:            # raw (node, neighbor list) pairs, in order
//	  a: [b, c]
//	  b: [a]
//	  c: [a]
//	edges:              # undirected pairs, applied with SetEdge
//	  - [c, d]
//
// Entries are handed to core.NewGraph without repair, so a document can
// describe a graph that violates symmetry or contains orphans; run
// (*core.Graph).Check on the result to find out. Edges are applied after the
// entries and always keep the graph symmetric. JSON is accepted as well,
// since every JSON document is valid YAML.
//
// Encode writes the entries of a graph in iteration order, so
// Decode(Encode(g)).Graph() reproduces g including node and neighbor order.
package seedfile
