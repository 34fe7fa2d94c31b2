// Package core: Graph method implementations.
//
// Every mutator validates its arguments before taking the write lock, so a
// rejected call leaves the graph untouched. Neighbor sets stay sorted, which
// lets membership, insertion and removal use binary search.

package core

import (
	"sort"
)

const (
	opAddEdge    = "AddEdge"
	opRemoveEdge = "RemoveEdge"
	opHasEdge    = "HasEdge"
	opNeighbors  = "Neighbors"
	opDegree     = "Degree"
)

// VertexCount returns the number of vertices n.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of unordered edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency = append(g.adjacency, nil)

	return len(g.adjacency) - 1
}

// AddEdge inserts the undirected edge {u, v}.
// Inserting an existing edge is a no-op.
// Returns *EdgeError wrapping *VertexError or ErrSelfLoop.
// Complexity: O(d) for the sorted insertion.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Validate endpoints and loop constraint
	if err := g.validateEdgeLocked(opAddEdge, u, v); err != nil {
		return err
	}
	// 2) Idempotent insert: skip if already present
	if containsSorted(g.adjacency[u], v) {
		return nil
	}
	// 3) Mirror into both neighbor sets
	g.adjacency[u] = insertSorted(g.adjacency[u], v)
	g.adjacency[v] = insertSorted(g.adjacency[v], u)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge {u, v}.
// Removing an absent edge is a no-op.
// Complexity: O(d).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validateEdgeLocked(opRemoveEdge, u, v); err != nil {
		return err
	}
	if !containsSorted(g.adjacency[u], v) {
		return nil
	}
	g.adjacency[u] = removeSorted(g.adjacency[u], v)
	g.adjacency[v] = removeSorted(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge {u, v} exists.
// An invalid query is an error, never a plain false.
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.validateEdgeLocked(opHasEdge, u, v); err != nil {
		return false, err
	}

	return containsSorted(g.adjacency[u], v), nil
}

// Neighbors returns a sorted copy of v's neighbor set.
// Complexity: O(d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.validateVertexLocked(v); err != nil {
		return nil, &EdgeError{Op: opNeighbors, Edge: Edge{V1: v, V2: v}, Err: err}
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.validateVertexLocked(v); err != nil {
		return 0, &EdgeError{Op: opDegree, Edge: Edge{V1: v, V2: v}, Err: err}
	}

	return len(g.adjacency[v]), nil
}

// ValidateVertex returns a *VertexError if v is outside [0, n).
func (g *Graph) ValidateVertex(v int) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validateVertexLocked(v)
}

// validateVertexLocked checks v against the current vertex range.
// Caller must hold mu (read or write).
func (g *Graph) validateVertexLocked(v int) error {
	if v < 0 || v >= len(g.adjacency) {
		return &VertexError{Vertex: v, N: len(g.adjacency)}
	}

	return nil
}

// validateEdgeLocked checks both endpoints and rejects self-loops.
// Caller must hold mu (read or write).
func (g *Graph) validateEdgeLocked(op string, u, v int) error {
	e := Edge{V1: u, V2: v}
	if err := g.validateVertexLocked(u); err != nil {
		return &EdgeError{Op: op, Edge: e, Err: err}
	}
	if err := g.validateVertexLocked(v); err != nil {
		return &EdgeError{Op: op, Edge: e, Err: err}
	}
	if u == v {
		return &EdgeError{Op: op, Edge: e, Err: ErrSelfLoop}
	}

	return nil
}

// containsSorted reports whether x is in the ascending slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}

// insertSorted inserts x into ascending s, keeping order. x must be absent.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// removeSorted removes x from ascending s. x must be present.
func removeSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)

	return append(s[:i], s[i+1:]...)
}
