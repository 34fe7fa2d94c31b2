package configgraph_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/edom/configgraph"
	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/domset"
)

func graphOf(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func build(t *testing.T, g *core.Graph, k int, opts ...configgraph.Option) *configgraph.Graph {
	t.Helper()
	sets, err := domset.Generate(context.Background(), g, k)
	require.NoError(t, err)
	cg, err := configgraph.Build(context.Background(), g, sets, opts...)
	require.NoError(t, err)

	return cg
}

func countTrue(b []bool) int {
	n := 0
	for _, x := range b {
		if x {
			n++
		}
	}

	return n
}

// TestBuild_CompleteK4 links every pair of singletons and keeps all safe.
func TestBuild_CompleteK4(t *testing.T) {
	g := graphOf(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	cg := build(t, g, 1)
	assert.Equal(t, 4, cg.VertexCount())
	assert.Equal(t, 6, cg.EdgeCount())
	assert.Equal(t, int64(6), cg.Stats().Pairs)
	assert.Equal(t, []bool{true, true, true, true}, cg.FindSafe())
	assert.Equal(t, []int{0}, cg.Trace())
}

// TestFindSafe_PathP3 shows the lone middle-vertex configuration cannot
// defend the leaves, while every pair of P3 is safe.
func TestFindSafe_PathP3(t *testing.T) {
	g := graphOf(t, 3, [2]int{0, 1}, [2]int{1, 2})

	one := build(t, g, 1)
	require.Equal(t, 1, one.VertexCount())
	assert.Equal(t, []bool{false}, one.FindSafe())
	assert.Equal(t, []int{1, 0}, one.Trace())
	assert.Empty(t, one.SafeSets())

	two := build(t, g, 2)
	assert.Equal(t, 3, two.EdgeCount())
	assert.Equal(t, []bool{true, true, true}, two.FindSafe())
	assert.Equal(t, []domset.Set{{0, 1}, {0, 2}, {1, 2}}, two.SafeSets())
}

// TestBuild_TwoTriangles: every one-per-triangle pair reaches every other.
func TestBuild_TwoTriangles(t *testing.T) {
	g := graphOf(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3},
	)
	cg := build(t, g, 2, configgraph.WithWorkers(3), configgraph.WithLogger(zap.NewNop()))
	assert.Equal(t, 9, cg.VertexCount())
	assert.Equal(t, 36, cg.EdgeCount())
	assert.Equal(t, 9, countTrue(cg.FindSafe()))
}

// TestFindSafe_Cascade needs a second pass: C1 and C2 fall in pass one,
// which strips C0 of its defenders in pass two.
func TestFindSafe_Cascade(t *testing.T) {
	cg, err := configgraph.New([]domset.Set{{0}, {1}, {2}}, 3)
	require.NoError(t, err)
	require.NoError(t, cg.AddEdge(0, 1))
	require.NoError(t, cg.AddEdge(0, 2))

	var history []int
	safe := cg.FindSafe(func(_ int, s []bool) { history = append(history, countTrue(s)) })
	assert.Equal(t, []bool{false, false, false}, safe)
	assert.Equal(t, []int{2, 1, 0}, cg.Trace())
	assert.Equal(t, []int{1, 0, 0}, history)
}

// TestFindSafe_InPassVisibility: a flip earlier in a pass is seen later in
// the same pass. Configuration 1 would survive pass one if it still counted
// configuration 0, which has already fallen.
func TestFindSafe_InPassVisibility(t *testing.T) {
	cg, err := configgraph.New([]domset.Set{{1}, {0}, {2}}, 3)
	require.NoError(t, err)
	require.NoError(t, cg.AddEdge(0, 1))
	require.NoError(t, cg.AddEdge(1, 2))
	assert.Equal(t, []bool{false, false, false}, cg.FindSafe())
	assert.Equal(t, []int{3, 0}, cg.Trace())
}

// TestFindSafe_MonotoneAndIdempotent checks on random graphs that no
// configuration is ever restored and that re-running flips nothing.
func TestFindSafe_MonotoneAndIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 25; trial++ {
		n := 3 + rng.Intn(4)
		g := graphOf(t, n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.45 {
					require.NoError(t, g.AddEdge(u, v))
				}
			}
		}
		k := 1 + rng.Intn(n)
		cg := build(t, g, k)

		prev := make([]bool, cg.VertexCount())
		for i := range prev {
			prev[i] = true
		}
		first := cg.FindSafe(func(pass int, s []bool) {
			for i := range s {
				require.False(t, s[i] && !prev[i], "trial %d pass %d: configuration %d restored", trial, pass, i)
			}
			copy(prev, s)
		})
		require.LessOrEqual(t, len(cg.Trace()), cg.VertexCount()+1)

		second := cg.FindSafe()
		require.Equal(t, first, second)
		require.Equal(t, []int{0}, cg.Trace())

		cg.Reset()
		require.Equal(t, first, cg.FindSafe(), "fixed point is deterministic")
	}
}

// TestBuild_Deterministic checks that pool size and task sizing do not
// change the resulting graph.
func TestBuild_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := graphOf(t, 8)
	for u := 0; u < 8; u++ {
		for v := u + 1; v < 8; v++ {
			if rng.Float64() < 0.5 {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}
	base := build(t, g, 3, configgraph.WithWorkers(1), configgraph.WithTaskRows(1000))
	for _, w := range []int{2, 4, 16} {
		for _, rows := range []int{0, 1, 3} {
			other := build(t, g, 3, configgraph.WithWorkers(w), configgraph.WithTaskRows(rows))
			require.Equal(t, base.AdjacencyList(), other.AdjacencyList(), "workers=%d rows=%d", w, rows)
			require.Equal(t, base.Stats().Pairs, other.Stats().Pairs)
		}
	}
}

func TestBuild_Cancelled(t *testing.T) {
	g := graphOf(t, 5)
	sets := []domset.Set{{0, 1, 2, 3, 4}, {0, 1, 2, 3, 4}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := configgraph.Build(ctx, g, sets)
	require.ErrorIs(t, err, context.Canceled)

	_, err = configgraph.Build(context.Background(), nil, sets)
	require.ErrorIs(t, err, configgraph.ErrNilGraph)
}

func TestNew_Errors(t *testing.T) {
	_, err := configgraph.New(nil, -1)
	require.ErrorIs(t, err, core.ErrInvalidVertexCount)

	_, err = configgraph.New([]domset.Set{{0, 3}}, 3)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	cg, err := configgraph.New([]domset.Set{{0}, {1}}, 2)
	require.NoError(t, err)
	require.ErrorIs(t, cg.AddEdge(0, 2), core.ErrVertexOutOfRange)
	require.ErrorIs(t, cg.AddEdge(1, 1), core.ErrSelfLoop)
	_, err = cg.Set(2)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	require.NoError(t, cg.AddEdge(0, 1))
	ok, err := cg.HasEdge(1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, cg.RemoveEdge(0, 1))
	assert.Equal(t, 0, cg.EdgeCount())
}

func TestBuild_Empty(t *testing.T) {
	cg, err := configgraph.Build(context.Background(), graphOf(t, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cg.VertexCount())
	assert.Empty(t, cg.FindSafe())
	assert.Equal(t, 0, cg.Stats().Tasks)
}
