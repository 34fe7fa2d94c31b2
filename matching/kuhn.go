package matching

// kuhn holds the mutable state of one MaxMatching run.
type kuhn struct {
	adj   [][]int
	match []int // right-local → left, or Unmatched
	mark  []int // last stamp at which a left vertex was visited
	stamp int
}

// MaxMatching returns a maximum matching of b.
//
// Steps:
//  1. Every right vertex starts Unmatched.
//  2. For each left vertex v in ascending order, bump the visit stamp
//     (equivalent to clearing all marks) and search for an augmenting path.
//  3. A successful search grows the matching by one.
//
// Complexity: O(V·E) time, O(V) extra memory.
func (b *Bipartite) MaxMatching() Matching {
	st := &kuhn{
		adj:   b.adj,
		match: make([]int, b.q),
		mark:  make([]int, b.p),
	}
	for j := range st.match {
		st.match[j] = Unmatched
	}

	size := 0
	for v := 0; v < b.p; v++ {
		st.stamp++
		if st.augment(v) {
			size++
		}
	}

	return Matching{Size: size, Right: st.match}
}

// augment looks for an augmenting path from left vertex v, displacing the
// current partner of an occupied right vertex when that partner can be
// rematched elsewhere.
func (st *kuhn) augment(v int) bool {
	if st.mark[v] == st.stamp {
		return false
	}
	st.mark[v] = st.stamp

	for _, u := range st.adj[v] {
		if st.match[u] == Unmatched || st.augment(st.match[u]) {
			st.match[u] = v
			return true
		}
	}

	return false
}
