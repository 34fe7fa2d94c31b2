package domset

// coverage marks dominated vertices with a stamp so that consecutive tests
// never clear the whole array.
type coverage struct {
	mark  []uint32
	stamp uint32
}

func newCoverage(n int) *coverage {
	return &coverage{mark: make([]uint32, n)}
}

// dominates reports whether every vertex is in set or adjacent to a member.
func (c *coverage) dominates(adj [][]int, set []int) bool {
	n := len(adj)
	c.stamp++
	if c.stamp == 0 { // wrapped: reset marks once
		for i := range c.mark {
			c.mark[i] = 0
		}
		c.stamp = 1
	}

	covered := 0
	hit := func(v int) {
		if c.mark[v] != c.stamp {
			c.mark[v] = c.stamp
			covered++
		}
	}
	for _, v := range set {
		hit(v)
		for _, u := range adj[v] {
			hit(u)
		}
		if covered == n {
			return true
		}
	}

	return covered == n
}
