// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for adjset/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and invariant assertions for core.Graph.
//   - Keep assertions on testify/require so failures stop the test at the first broken contract.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjset/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
	NodeZ = "z"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// NewTriangle returns the graph a-b, b-c, c-a.
func NewTriangle() *core.Graph[string] {
	g := core.NewGraph[string]()
	g.SetEdge(NodeA, NodeB)
	g.SetEdge(NodeB, NodeC)
	g.SetEdge(NodeC, NodeA)

	return g
}

// RequireInvariants FAILS the test unless g is symmetric and orphan-free.
//
// It checks both through the public integrity checker and by hand, so a bug
// in Tidy cannot hide a bug in the mutation paths.
func RequireInvariants(t *testing.T, g *core.Graph[string], op string) {
	t.Helper()

	require.NoError(t, g.Check(), "%s: Check", op)
	for k, ns := range g.All() {
		require.NotZero(t, ns.Len(), "%s: node %q stored without neighbors", op, k)
		for v := range ns.All() {
			mirror, ok := g.Get(v)
			require.True(t, ok, "%s: neighbor %q of %q not stored", op, v, k)
			require.True(t, mirror.Has(k), "%s: edge (%q,%q) has no mirror", op, k, v)
		}
	}
}

// EdgePairs flattens edges into [from,to] pairs for compact assertions.
func EdgePairs(es []core.Edge[string]) [][2]string {
	out := make([][2]string, len(es))
	for i, e := range es {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}
