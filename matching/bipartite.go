package matching

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/edom/core"
)

const opNewBipartite = "NewBipartite"

// NewBipartite builds a bipartite graph with p left and q right vertices.
// Each edge must join a left vertex in [0,p) with a right vertex in
// [p,p+q), in either order. Duplicate edges are ignored.
//
// Returns ErrInvalidSideSize for negative sizes, or a *core.EdgeError
// wrapping ErrSameSide / *core.VertexError for a malformed edge.
// Complexity: O(p + q + E log E).
func NewBipartite(p, q int, edges []core.Edge) (*Bipartite, error) {
	// 1) Validate side sizes
	if p < 0 {
		return nil, fmt.Errorf("matching: left side %d: %w", p, ErrInvalidSideSize)
	}
	if q < 0 {
		return nil, fmt.Errorf("matching: right side %d: %w", q, ErrInvalidSideSize)
	}

	b := &Bipartite{p: p, q: q, adj: make([][]int, p)}

	// 2) Validate each edge and bucket it under its left endpoint
	for _, e := range edges {
		left, right, err := b.orient(e)
		if err != nil {
			return nil, &core.EdgeError{Op: opNewBipartite, Edge: e, Err: err}
		}
		b.adj[left] = append(b.adj[left], right)
	}

	// 3) Sort and deduplicate every left adjacency list
	for v, nbrs := range b.adj {
		if len(nbrs) == 0 {
			continue
		}
		sort.Ints(nbrs)
		uniq := nbrs[:1]
		for _, u := range nbrs[1:] {
			if u != uniq[len(uniq)-1] {
				uniq = append(uniq, u)
			}
		}
		b.adj[v] = uniq
		b.edges += len(uniq)
	}

	return b, nil
}

// orient maps e to (left, right-local), rejecting same-side or out-of-range
// endpoints.
func (b *Bipartite) orient(e core.Edge) (int, int, error) {
	n := b.p + b.q
	for _, v := range [2]int{e.V1, e.V2} {
		if v < 0 || v >= n {
			return 0, 0, &core.VertexError{Vertex: v, N: n}
		}
	}
	l, r := e.V1, e.V2
	if l > r {
		l, r = r, l
	}
	if l >= b.p || r < b.p {
		return 0, 0, ErrSameSide
	}

	return l, r - b.p, nil
}

// LeftSize returns p.
func (b *Bipartite) LeftSize() int { return b.p }

// RightSize returns q.
func (b *Bipartite) RightSize() int { return b.q }

// EdgeCount returns the number of distinct edges.
func (b *Bipartite) EdgeCount() int { return b.edges }

// HasEdge reports whether left vertex l is adjacent to right vertex r
// (global index in [p,p+q)).
func (b *Bipartite) HasEdge(l, r int) (bool, error) {
	left, right, err := b.orient(core.Edge{V1: l, V2: r})
	if err != nil {
		return false, &core.EdgeError{Op: "HasEdge", Edge: core.Edge{V1: l, V2: r}, Err: err}
	}
	nbrs := b.adj[left]
	i := sort.SearchInts(nbrs, right)

	return i < len(nbrs) && nbrs[i] == right, nil
}
