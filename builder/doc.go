// SPDX-License-Identifier: MIT

// Package builder provides reusable “functional‐options”‐style constructors
// for deterministic adjacency-set graph fixtures. Every constructor mutates a
// core.Graph[string] through SetEdge only, so the symmetric and no-orphan
// guarantees of core hold for every generated topology.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        new graph, resolve options, run constructors in order.
//     – Apply:             same pipeline against a caller-owned graph.
//     – Topology:          resolve a topology name ("cycle", "grid", ...) for CLIs.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithIDScheme, WithSeed, WithRand, WithPartitionPrefix.
//   - Node‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix plus index ("v0","v1",…).
//   - Constructors:
//     – Path(n≥2), Cycle(n≥3), Star(n≥2), Wheel(n≥4), Complete(n≥2),
//     CompleteBipartite(n1,n2≥1), Grid(rows,cols; rows·cols≥2),
//     RandomSparse(n≥2, p∈[0,1]).
//
// Guarantees:
//
//   - Idempotent: re-running the same constructor on g adds no duplicate
//     nodes or edges (set semantics of core).
//   - Deterministic: identical options, seed and constructor order produce
//     identical graphs, including insertion order.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//     Constructors themselves never panic and return wrapped sentinels.
//
// Logging is silent until UseLogger is called.
package builder
