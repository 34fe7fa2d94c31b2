// File: builder_impl_test.go
// Functional tests for every Constructor: counts, sample topology checks,
// determinism and disjoint composition.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edom/builder"
	"github.com/katalvlaran/edom/core"
)

func hasEdge(t *testing.T, g *core.Graph, u, v int) bool {
	t.Helper()
	ok, err := g.HasEdge(u, v)
	require.NoError(t, err)

	return ok
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		opts        []builder.BuilderOption
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, hasEdge(t, g, i, (i+1)%5), "cycle edge %d", i)
					assert.Equal(t, 2, mustDegree(t, g, i))
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 0, 1))
				assert.True(t, hasEdge(t, g, 2, 3))
				assert.False(t, hasEdge(t, g, 0, 3))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, mustDegree(t, g, 0))
				for leaf := 1; leaf < 4; leaf++ {
					assert.Equal(t, 1, mustDegree(t, g, leaf))
				}
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8, // 4 rim + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, mustDegree(t, g, 0))
				assert.True(t, hasEdge(t, g, 1, 2))
				assert.True(t, hasEdge(t, g, 4, 1))
				assert.False(t, hasEdge(t, g, 1, 3))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 4; i++ {
					assert.Equal(t, 3, mustDegree(t, g, i))
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 0, 2))
				assert.True(t, hasEdge(t, g, 1, 4))
				assert.False(t, hasEdge(t, g, 0, 1))
				assert.False(t, hasEdge(t, g, 2, 3))
			},
		},
		{
			name: "Grid(2x3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7, // 2*2 + 1*3
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, 0, 1)) // (0,0)-(0,1)
				assert.True(t, hasEdge(t, g, 0, 3)) // (0,0)-(1,0)
				assert.False(t, hasEdge(t, g, 2, 3))
			},
		},
		{
			name: "Grid(1x1)", ctor: builder.Grid(1, 1), wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name: "Grid3D(2x2x2)", ctor: builder.Grid3D(2, 2, 2), wantV: 8, wantE: 12, // cube
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 8; v++ {
					assert.Equal(t, 3, mustDegree(t, g, v))
				}
				assert.True(t, hasEdge(t, g, 0, 4)) // (0,0,0)-(1,0,0)
			},
		},
		{
			name: "Grid3D(1x2x3)", ctor: builder.Grid3D(1, 2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name: "Isolated(3)", ctor: builder.Isolated(3), wantV: 3, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{0, 1, 2}, g.IsolatedVertices())
			},
		},
		{
			name: "RandomGNP_p0(5)", ctor: builder.RandomGNP(5, 0.0), wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name: "RandomGNP_p1(5)", ctor: builder.RandomGNP(5, 1.0), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name: "RandomRegular(6,2)", ctor: builder.RandomRegular(6, 2),
			opts: []builder.BuilderOption{builder.WithSeed(42)}, wantV: 6, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 6; v++ {
					assert.Equal(t, 2, mustDegree(t, g, v))
				}
			},
		},
		{
			name: "RandomRegular(8,3)", ctor: builder.RandomRegular(8, 3),
			opts: []builder.BuilderOption{builder.WithSeed(7)}, wantV: 8, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 0; v < 8; v++ {
					assert.Equal(t, 3, mustDegree(t, g, v))
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount(), "vertices")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edges")
			tc.sampleCheck(t, g)
		})
	}
}

func mustDegree(t *testing.T, g *core.Graph, v int) int {
	t.Helper()
	d, err := g.Degree(v)
	require.NoError(t, err)

	return d
}

// TestBuildGraph_DisjointUnion checks that constructors append blocks.
func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3), builder.Isolated(1))
	require.NoError(t, err)
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, hasEdge(t, g, 3, 5))
	assert.False(t, hasEdge(t, g, 2, 3))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6}}, g.Components())
}

func TestApply_Existing(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, nil, builder.Path(3)))
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, hasEdge(t, g, 2, 3))

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(3)), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(g, nil, nil), builder.ErrConstructFailed)
}

// TestBuilders_Errors asserts the sentinel returned for each invalid input.
func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Grid3D(2,0,2)", builder.Grid3D(2, 0, 2), nil, builder.ErrTooFewVertices},
		{"Isolated(0)", builder.Isolated(0), nil, builder.ErrTooFewVertices},
		{"RandomGNP(0,.5)", builder.RandomGNP(0, 0.5), nil, builder.ErrTooFewVertices},
		{"RandomGNP(p<0)", builder.RandomGNP(4, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomGNP(p>1)", builder.RandomGNP(4, 1.1), nil, builder.ErrInvalidProbability},
		{"RandomGNP(no rng)", builder.RandomGNP(4, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomRegular(d>=n)", builder.RandomRegular(4, 4), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(odd)", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", builder.RandomRegular(6, 2), nil, builder.ErrNeedRandSource},
		{"nil", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.Nil(t, g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestRandom_Deterministic checks that equal seeds give equal graphs.
func TestRandom_Deterministic(t *testing.T) {
	for _, ctor := range []builder.Constructor{builder.RandomGNP(12, 0.3), builder.RandomRegular(10, 3)} {
		a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(99)}, ctor)
		require.NoError(t, err)
		b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(99)))}, ctor)
		require.NoError(t, err)
		assert.Equal(t, a.Edges(), b.Edges())
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
