package configgraph

import "github.com/katalvlaran/edom/domset"

// FindSafe runs the safe-set fixed point and returns a copy of the marker:
// entry i is true when configuration i survives. Hooks are invoked after
// every pass.
//
// Complexity: O(passes · Σ_i (k + deg(i)·k)), passes ≤ m+1.
func (c *Graph) FindSafe(hooks ...PassHook) []bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	adj := c.adj.AdjacencyList()
	d := &defense{mark: make([]int, c.originalN)}
	c.trace = c.trace[:0]

	for pass := 1; ; pass++ {
		flips := 0
		for i := range c.sets {
			if !c.safe[i] {
				continue
			}
			if !d.covers(c.originalN, c.sets, adj[i], c.safe, i) {
				c.safe[i] = false
				flips++
			}
		}
		c.trace = append(c.trace, flips)
		for _, h := range hooks {
			h(pass, c.safe)
		}
		if flips == 0 {
			break
		}
	}

	out := make([]bool, len(c.safe))
	copy(out, c.safe)

	return out
}

// Reset marks every configuration tentatively safe again.
func (c *Graph) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.safe {
		c.safe[i] = true
	}
	c.trace = c.trace[:0]
}

// Trace returns the number of configurations flipped to unsafe in each pass
// of the last FindSafe call. The final entry is always 0.
func (c *Graph) Trace() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int, len(c.trace))
	copy(out, c.trace)

	return out
}

// SafeIndices returns the indices currently marked safe, ascending.
func (c *Graph) SafeIndices() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []int
	for i, ok := range c.safe {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// SafeSets returns the configurations currently marked safe.
func (c *Graph) SafeSets() []domset.Set {
	idx := c.SafeIndices()
	out := make([]domset.Set, len(idx))
	for n, i := range idx {
		out[n] = c.sets[i]
	}

	return out
}

// defense holds the stamped coverage marker reused across checks.
type defense struct {
	mark  []int
	stamp int
}

// covers reports whether configuration i together with its currently safe
// neighbors nbrs contains every original vertex.
func (d *defense) covers(n int, sets []domset.Set, nbrs []int, safe []bool, i int) bool {
	d.stamp++
	covered := 0
	add := func(s domset.Set) {
		for _, v := range s {
			if d.mark[v] != d.stamp {
				d.mark[v] = d.stamp
				covered++
			}
		}
	}

	add(sets[i])
	for _, j := range nbrs {
		if covered == n {
			break
		}
		if safe[j] {
			add(sets[j])
		}
	}

	return covered == n
}
