package core

import "sort"

// Edges returns all edges in canonical form (V1 < V2), sorted by (V1, V2).
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{V1: u, V2: v})
			}
		}
	}

	return out
}

// AdjacencyList returns a deep copy of every neighbor set, indexed by vertex.
// Algorithms take one snapshot and then read it lock-free.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		out[v] = make([]int, len(nbrs))
		copy(out[v], nbrs)
	}

	return out
}

// Clone returns an independent deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	adj := g.AdjacencyList()

	g.mu.RLock()
	m := g.edgeCount
	g.mu.RUnlock()

	return &Graph{adjacency: adj, edgeCount: m}
}

// IsolatedVertices returns the vertices of degree zero, ascending.
// Complexity: O(V).
func (g *Graph) IsolatedVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for v, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// Components returns the connected components of g. Each component lists
// its vertices ascending; components are ordered by their smallest vertex.
//
// Steps:
//  1. Scan vertices in ascending order; every unvisited vertex seeds a BFS.
//  2. The BFS queue is a slice with a moving head (no reallocation on pop).
//  3. Sort the collected component before appending.
//
// Complexity: O(V + E) plus O(c log c) per component for sorting.
func (g *Graph) Components() [][]int {
	adj := g.AdjacencyList()

	visited := make([]bool, len(adj))
	var comps [][]int
	for s := range adj {
		if visited[s] {
			continue
		}
		visited[s] = true
		queue := []int{s}
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, w := range adj[u] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
