package domset

import (
	"context"
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// ctxCheckEvery bounds how many leaves are tested between context checks.
const ctxCheckEvery = 1 << 12

// enumerator carries the recursion state of one Enumerate call.
type enumerator struct {
	ctx    context.Context
	adj    [][]int
	k      int
	cur    []int
	visit  Visit
	cover  *coverage
	leaves int
}

// Generate returns every dominating set of size k, in lexicographic order.
// Returns a *RangeError when k ∉ [0, n].
func Generate(ctx context.Context, g *core.Graph, k int) ([]Set, error) {
	var out []Set
	err := Enumerate(ctx, g, k, func(s Set) error {
		cp := make(Set, len(s))
		copy(cp, s)
		out = append(out, cp)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Enumerate streams every dominating set of size k to visit.
//
// Steps:
//  1. Validate g and k; snapshot adjacency once.
//  2. Recurse over combinations, choosing the next vertex ≥ last+1.
//  3. Prune branches that cannot reach size k with the remaining vertices.
//  4. At each leaf test domination; on success call visit.
//  5. Check ctx every ctxCheckEvery leaves.
func Enumerate(ctx context.Context, g *core.Graph, k int, visit Visit) error {
	if g == nil {
		return ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	adj := g.AdjacencyList()
	n := len(adj)
	if k < 0 || k > n {
		return &RangeError{K: k, N: n}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e := &enumerator{
		ctx:   ctx,
		adj:   adj,
		k:     k,
		cur:   make([]int, 0, k),
		visit: visit,
		cover: newCoverage(n),
	}

	return e.explore(0)
}

// explore extends e.cur with vertices from next onward.
func (e *enumerator) explore(next int) error {
	if len(e.cur) == e.k {
		return e.leaf()
	}
	n := len(e.adj)
	// need = vertices still to choose; stop once fewer remain.
	need := e.k - len(e.cur)
	for v := next; v <= n-need; v++ {
		e.cur = append(e.cur, v)
		if err := e.explore(v + 1); err != nil {
			return err
		}
		e.cur = e.cur[:len(e.cur)-1]
	}

	return nil
}

// leaf tests the current combination and reports it when it dominates.
func (e *enumerator) leaf() error {
	e.leaves++
	if e.leaves%ctxCheckEvery == 0 {
		if err := e.ctx.Err(); err != nil {
			return err
		}
	}
	if !e.cover.dominates(e.adj, e.cur) {
		return nil
	}
	if err := e.visit(e.cur); err != nil {
		return err
	}

	return nil
}

// IsDominating reports whether set dominates g. Members must be valid
// vertices; duplicates are tolerated.
func IsDominating(g *core.Graph, set []int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	adj := g.AdjacencyList()
	for _, v := range set {
		if v < 0 || v >= len(adj) {
			return false, fmt.Errorf("domset: IsDominating: %w", &core.VertexError{Vertex: v, N: len(adj)})
		}
	}

	return newCoverage(len(adj)).dominates(adj, set), nil
}

// Count returns the binomial coefficient C(n,k), saturating at the maximum
// int value. It sizes the search space for logging.
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	const maxInt = int(^uint(0) >> 1)
	c := 1
	for i := 1; i <= k; i++ {
		// c * (n-k+i) / i stays integral at every step.
		f := n - k + i
		if c > maxInt/f {
			return maxInt
		}
		c = c * f / i
	}

	return c
}
