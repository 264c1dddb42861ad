// SPDX-License-Identifier: MIT
// Package core_test verifies NewGraph seeding semantics.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjset/core"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph[string]()
	require.Zero(t, g.Size())
	require.Empty(t, g.Edges())
	require.True(t, g.Tidy(nil))
}

func TestNewGraph_SeedsEntriesInOrder(t *testing.T) {
	g := core.NewGraph(
		core.Entry[string]{Node: NodeB, Neighbors: core.NewSet(NodeA)},
		core.Entry[string]{Node: NodeA, Neighbors: core.NewSet(NodeB)},
	)

	require.Equal(t, []string{NodeB, NodeA}, g.Nodes().Slice())
	require.Equal(t, [][2]string{{NodeB, NodeA}, {NodeA, NodeB}}, EdgePairs(g.Edges()))
	RequireInvariants(t, g, "symmetric seed")
}

func TestNewGraph_DuplicateKeyOverwrites(t *testing.T) {
	g := core.NewGraph(
		core.Entry[string]{Node: NodeA, Neighbors: core.NewSet(NodeB)},
		core.Entry[string]{Node: NodeC, Neighbors: core.NewSet(NodeA)},
		core.Entry[string]{Node: NodeA, Neighbors: core.NewSet(NodeC)},
	)

	na, ok := g.Get(NodeA)
	require.True(t, ok)
	require.Equal(t, []string{NodeC}, na.Slice(), "later entry wins")
	require.Equal(t, []string{NodeA, NodeC}, g.Nodes().Slice(), "overwritten key keeps its first position")
}

func TestNewGraph_NoRepairOnSeed(t *testing.T) {
	// a → b without b → a, and an empty set for c.
	g := core.NewGraph(
		core.Entry[string]{Node: NodeA, Neighbors: core.NewSet(NodeB)},
		core.Entry[string]{Node: NodeC},
	)

	require.True(t, g.HasEdge(NodeA, NodeB))
	require.False(t, g.HasNode(NodeB), "seed is not repaired")
	require.True(t, g.HasNode(NodeC), "empty seed entry is kept until touched")
	require.Error(t, g.Check())

	// Mutations touching the broken entries still leave their own halves consistent.
	g.RemoveEdge(NodeC, NodeZ)
	require.False(t, g.HasNode(NodeC), "touching an empty set drops it")

	ns, ok := g.DeleteNode(NodeA)
	require.True(t, ok)
	require.Equal(t, []string{NodeB}, ns.Slice())
	require.Zero(t, g.Size())
}

func TestNewGraph_SeedIsCopied(t *testing.T) {
	seed := core.NewSet(NodeB)
	g := core.NewGraph(
		core.Entry[string]{Node: NodeA, Neighbors: seed},
		core.Entry[string]{Node: NodeB, Neighbors: core.NewSet(NodeA)},
	)

	seed.Add(NodeZ)
	require.False(t, g.HasEdge(NodeA, NodeZ), "graph must not alias seed sets")

	g.SetEdge(NodeA, NodeC)
	require.False(t, seed.Has(NodeC), "seed must not alias graph sets")
}

func TestEdge_Reverse(t *testing.T) {
	e := core.Edge[string]{From: NodeA, To: NodeB}
	require.Equal(t, core.Edge[string]{From: NodeB, To: NodeA}, e.Reverse())
}
