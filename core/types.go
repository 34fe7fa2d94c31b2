package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a negative vertex count at construction.
	ErrInvalidVertexCount = errors.New("core: invalid vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose two endpoints are equal.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is an unordered pair of vertices. V1 and V2 are kept as given;
// Normalize returns the canonical V1 < V2 form.
type Edge struct {
	V1, V2 int
}

// Normalize returns the edge with V1 <= V2.
func (e Edge) Normalize() Edge {
	if e.V1 > e.V2 {
		return Edge{V1: e.V2, V2: e.V1}
	}

	return e
}

// String renders the edge as "v1–v2" using 0-based indices.
func (e Edge) String() string {
	return fmt.Sprintf("%d–%d", e.V1, e.V2)
}

// VertexError reports a vertex index outside the valid range [0, N).
type VertexError struct {
	Vertex int // offending index
	N      int // vertex count at the time of the check
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("core: vertex %d out of range [0,%d)", e.Vertex, e.N)
}

// Unwrap exposes ErrVertexOutOfRange for errors.Is.
func (e *VertexError) Unwrap() error { return ErrVertexOutOfRange }

// EdgeError reports a failed edge operation together with its cause.
// Op names the operation ("AddEdge", "HasEdge", ...), Edge the argument.
type EdgeError struct {
	Op   string
	Edge Edge
	Err  error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("core: %s(%s): %v", e.Op, e.Edge, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EdgeError) Unwrap() error { return e.Err }

// Graph is a simple undirected graph over vertices [0, n).
//
// adjacency[v] is the sorted neighbor set of v. edgeCount tracks the number
// of unordered edges. mu guards both.
type Graph struct {
	mu sync.RWMutex

	adjacency [][]int
	edgeCount int
}

// NewGraph creates a graph with n isolated vertices.
// Returns ErrInvalidVertexCount if n < 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("core: NewGraph(%d): %w", n, ErrInvalidVertexCount)
	}

	return &Graph{adjacency: make([][]int, n)}, nil
}
