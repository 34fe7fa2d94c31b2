package matching

import (
	"errors"
	"fmt"
)

// Unmatched marks a vertex with no partner in a Matching.
const Unmatched = -1

var (
	// ErrInvalidSideSize indicates a negative side size.
	ErrInvalidSideSize = errors.New("matching: invalid side size")

	// ErrSameSide indicates an edge whose endpoints lie on the same side.
	ErrSameSide = errors.New("matching: edge endpoints on the same side")
)

// Bipartite is an immutable bipartite graph with sides [0,p) and [p,p+q).
// adj[v] lists the right vertices adjacent to left vertex v, ascending,
// as right-local indices in [0,q).
type Bipartite struct {
	p, q  int
	adj   [][]int
	edges int
}

// Matching is the result of MaxMatching.
//
// Right[j] holds the left vertex matched to right vertex p+j, or Unmatched.
// Entries other than Unmatched are pairwise distinct.
type Matching struct {
	Size  int
	Right []int
}

// Left returns the inverse view: Left()[i] is the right-local index matched
// to left vertex i, or Unmatched. p is the left side size.
func (m Matching) Left(p int) []int {
	out := make([]int, p)
	for i := range out {
		out[i] = Unmatched
	}
	for j, i := range m.Right {
		if i != Unmatched {
			out[i] = j
		}
	}

	return out
}

// IsPerfect reports whether every vertex on both sides of size k is matched.
func (m Matching) IsPerfect(k int) bool {
	return m.Size == k && len(m.Right) == k
}

// String renders the matching as "size=2 [0→1 1→0]" using right-local indices.
func (m Matching) String() string {
	s := fmt.Sprintf("size=%d [", m.Size)
	first := true
	for j, i := range m.Right {
		if i == Unmatched {
			continue
		}
		if !first {
			s += " "
		}
		first = false
		s += fmt.Sprintf("%d→%d", i, j)
	}

	return s + "]"
}
