// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// idempotence, determinism and error contracts.
package builder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
)

// build runs a single constructor with opts and fails the test on error.
func build(t *testing.T, ctor builder.Constructor, opts ...builder.BuilderOption) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(opts, ctor)
	require.NoError(t, err)
	require.NoError(t, g.Check(), "builder output must satisfy graph invariants")

	return g
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int // expected node count
		wantE       int // expected undirected edge count
		sampleCheck func(t *testing.T, g *core.Graph[string])
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				for i := 0; i < 5; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint((i+1)%5)
					require.True(t, g.HasEdge(from, to), "%s-%s", from, to)
					require.Equal(t, 2, g.Degree(from))
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.Equal(t, []string{"0", "1", "2", "3"}, g.Nodes().Slice())
				require.Equal(t, 1, g.Degree("0"))
				require.Equal(t, 1, g.Degree("3"))
				require.False(t, g.HasEdge("3", "0"))
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.Equal(t, 3, g.Degree(builder.CenterVertexID))
				for _, leaf := range []string{"1", "2", "3"} {
					require.True(t, g.HasEdge(leaf, builder.CenterVertexID))
					require.Equal(t, 1, g.Degree(leaf))
				}
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.Equal(t, 4, g.Degree(builder.CenterVertexID))
				require.True(t, g.HasEdge("3", "0"), "rim must be closed")
				require.Equal(t, 3, g.Degree("2"))
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				for i := 0; i < 4; i++ {
					require.Equal(t, 3, g.Degree(fmt.Sprint(i)))
				}
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.True(t, g.HasEdge("L1", "R2"))
				require.False(t, g.HasEdge("L0", "L1"))
				require.False(t, g.HasEdge("R0", "R1"))
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.True(t, g.HasEdge("0,0", "0,1"))
				require.True(t, g.HasEdge("0,0", "1,0"))
				require.False(t, g.HasEdge("0,0", "1,1"))
				require.Equal(t, 3, g.Degree("0,1"))
			},
		},
		{
			name:  "Grid(1,3) is a path",
			ctor:  builder.Grid(1, 3),
			wantV: 3, wantE: 2,
		},
		{
			name:  "RandomSparse(6,1) is complete without RNG",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.ctor)
			require.Equal(t, tc.wantV, g.Size())
			require.Equal(t, tc.wantE, g.Stats().EdgeCount)
			require.Equal(t, 2*tc.wantE, g.EdgeCount(), "two stored pairs per edge")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors verifies that invalid parameters yield the right sentinels.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(1)", builder.Complete(1), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid(1,1)", builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"RandomSparse(1,0.5)", builder.RandomSparse(1, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(4,1.5)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(4,-1)", builder.RandomSparse(4, -1), builder.ErrInvalidProbability},
		{"RandomSparse(4,0.5) no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g, "no partial graph on error")
			require.True(t, strings.HasPrefix(err.Error(), "BuildGraph: "))
		})
	}
}

// TestBuilders_Idempotent re-applies a constructor and expects no change.
func TestBuilders_Idempotent(t *testing.T) {
	t.Parallel()

	g := build(t, builder.Wheel(6))
	before := g.Edges()
	require.NoError(t, builder.Apply(g, nil, builder.Wheel(6)))
	require.Equal(t, before, g.Edges())
}

// TestBuilders_Compose merges two constructors that share node IDs.
func TestBuilders_Compose(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	// Path: 0-1-2; Star: Center-1, Center-2.
	require.Equal(t, []string{"0", "1", "2", builder.CenterVertexID}, g.Nodes().Slice())
	require.Equal(t, 3, g.Degree("1"))
	require.NoError(t, g.Check())
}

// TestApply_NilGraph rejects a nil target.
func TestApply_NilGraph(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

// TestApply_KeepsEarlierWork documents that Apply does not roll back.
func TestApply_KeepsEarlierWork(t *testing.T) {
	t.Parallel()

	g := core.NewGraph[string]()
	err := builder.Apply(g, nil, builder.Path(2), builder.Cycle(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	require.True(t, g.HasEdge("0", "1"))
}

// TestRandomSparse_Deterministic checks seed reproducibility and p=0.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	a := build(t, builder.RandomSparse(30, 0.2), builder.WithSeed(11))
	b := build(t, builder.RandomSparse(30, 0.2), builder.WithSeed(11))
	require.Equal(t, a.Edges(), b.Edges())
	require.LessOrEqual(t, a.Size(), 30)

	empty := build(t, builder.RandomSparse(10, 0))
	require.Zero(t, empty.Size(), "nodes without edges are never stored")
}

// TestIDSchemes_Applied shows that constructors honor the configured scheme.
func TestIDSchemes_Applied(t *testing.T) {
	t.Parallel()

	g := build(t, builder.Cycle(3), builder.WithSymbolIDs())
	require.Equal(t, []string{"A", "B", "C"}, g.Nodes().Slice())

	g = build(t, builder.CompleteBipartite(1, 1), builder.WithPartitionPrefix("U", "V"))
	require.True(t, g.HasEdge("U0", "V0"))
}

// TestIDSchemes_Capacity checks that a bounded scheme turns an oversized
// request into ErrIDSpaceExhausted instead of a panic.
func TestIDSchemes_Capacity(t *testing.T) {
	t.Parallel()

	symbols := []builder.BuilderOption{builder.WithSymbolIDs()}
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(26)", builder.Path(builder.SymbolIDCapacity), nil},
		{"Path(27)", builder.Path(builder.SymbolIDCapacity + 1), builder.ErrIDSpaceExhausted},
		{"Path(30)", builder.Path(30), builder.ErrIDSpaceExhausted},
		{"Cycle(27)", builder.Cycle(builder.SymbolIDCapacity + 1), builder.ErrIDSpaceExhausted},
		{"Complete(27)", builder.Complete(builder.SymbolIDCapacity + 1), builder.ErrIDSpaceExhausted},
		{"Star(26)", builder.Star(builder.SymbolIDCapacity), nil},
		{"Star(27)", builder.Star(builder.SymbolIDCapacity + 1), builder.ErrIDSpaceExhausted},
		{"Wheel(27)", builder.Wheel(builder.SymbolIDCapacity + 1), nil},
		{"Wheel(28)", builder.Wheel(builder.SymbolIDCapacity + 2), builder.ErrIDSpaceExhausted},
		{"RandomSparse(27,1)", builder.RandomSparse(builder.SymbolIDCapacity+1, 1), builder.ErrIDSpaceExhausted},
		{"Grid(10,10)", builder.Grid(10, 10), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var (
				g   *core.Graph[string]
				err error
			)
			require.NotPanics(t, func() { g, err = builder.BuildGraph(symbols, tc.ctor) })
			if tc.want == nil {
				require.NoError(t, err)
				require.NoError(t, g.Check())
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}

	// unbounded schemes are not limited
	g := build(t, builder.Path(30), builder.WithExcelColumnIDs())
	require.Equal(t, 30, g.Size())
}

// TestTopology resolves names and rejects unknown ones.
func TestTopology(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"bipartite", "complete", "cycle", "grid", "path", "random", "star", "wheel"},
		builder.TopologyNames())

	ctor, err := builder.Topology(" Grid ", 2, 2, 0)
	require.NoError(t, err)
	g := build(t, ctor)
	require.Equal(t, 4, g.Size())

	ctor, err = builder.Topology("bipartite", 1, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, build(t, ctor).Size())

	_, err = builder.Topology("hypercube", 3, 0, 0)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.Contains(t, err.Error(), "hypercube")
}
