package configgraph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/domset"
)

// Graph is a configuration graph over dominating sets of one size.
//
// Adjacency is held in a core.Graph whose vertex i stands for sets[i].
// originalN is the vertex count of the base graph; defense is checked
// against [0, originalN), never against configuration indices.
type Graph struct {
	mu sync.Mutex // guards safe, trace

	sets      []domset.Set
	originalN int
	adj       *core.Graph

	safe  []bool
	trace []int
	stats BuildStats
}

// New creates a configuration graph with one vertex per set and no edges.
// Every configuration starts tentatively safe.
// Returns core.ErrInvalidVertexCount if originalN < 0, or a wrapped
// *core.VertexError if a set names a vertex outside [0, originalN).
func New(sets []domset.Set, originalN int) (*Graph, error) {
	if originalN < 0 {
		return nil, fmt.Errorf("configgraph: original vertex count %d: %w", originalN, core.ErrInvalidVertexCount)
	}
	for i, s := range sets {
		for _, v := range s {
			if v < 0 || v >= originalN {
				return nil, fmt.Errorf("configgraph: configuration %d: %w", i, &core.VertexError{Vertex: v, N: originalN})
			}
		}
	}
	adj, err := core.NewGraph(len(sets))
	if err != nil {
		return nil, err
	}
	safe := make([]bool, len(sets))
	for i := range safe {
		safe[i] = true
	}

	return &Graph{sets: sets, originalN: originalN, adj: adj, safe: safe}, nil
}

// VertexCount returns the number of configurations m.
func (c *Graph) VertexCount() int { return len(c.sets) }

// EdgeCount returns the number of feasible-transition edges.
func (c *Graph) EdgeCount() int { return c.adj.EdgeCount() }

// OriginalVertexCount returns the base graph's vertex count.
func (c *Graph) OriginalVertexCount() int { return c.originalN }

// Set returns configuration i. The slice is shared; do not modify it.
func (c *Graph) Set(i int) (domset.Set, error) {
	if i < 0 || i >= len(c.sets) {
		return nil, &core.VertexError{Vertex: i, N: len(c.sets)}
	}

	return c.sets[i], nil
}

// Sets returns all configurations in index order. The slice is shared.
func (c *Graph) Sets() []domset.Set { return c.sets }

// AddEdge records a feasible transition between configurations i and j.
// Errors are *core.EdgeError, as for the base graph.
func (c *Graph) AddEdge(i, j int) error { return c.adj.AddEdge(i, j) }

// RemoveEdge deletes the transition between i and j, if present.
func (c *Graph) RemoveEdge(i, j int) error { return c.adj.RemoveEdge(i, j) }

// HasEdge reports whether configurations i and j are adjacent.
func (c *Graph) HasEdge(i, j int) (bool, error) { return c.adj.HasEdge(i, j) }

// Neighbors returns the configurations adjacent to i, ascending.
func (c *Graph) Neighbors(i int) ([]int, error) { return c.adj.Neighbors(i) }

// AdjacencyList returns a copy of the configuration adjacency.
func (c *Graph) AdjacencyList() [][]int { return c.adj.AdjacencyList() }

// Stats returns the statistics of the Build call that produced c.
func (c *Graph) Stats() BuildStats { return c.stats }
