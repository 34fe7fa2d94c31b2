// Package core provides the simple undirected Graph used as the base
// structure for eternal domination search.
//
// Vertices are dense integer identities in [0, n). Adjacency is kept as one
// ordered neighbor set per vertex (a sorted []int), which gives:
//
//   - Deterministic iteration: Neighbors(), Edges(), AdjacencyList() are sorted.
//   - O(log d) membership checks via binary search.
//   - Cheap snapshots: AdjacencyList() hands hot loops an immutable copy.
//
// Invariants held by every exported method:
//
//   - Symmetry: edge (u,v) is present in both adjacency entries or neither.
//   - No self-loops, no multi-edges; inserting an existing edge is a no-op.
//   - EdgeCount() equals half the sum of all neighbor-set sizes.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)         // O(n)
//	AddVertex() int                         // O(1) amortized
//	AddEdge(u, v int) error                 // O(d)
//	RemoveEdge(u, v int) error              // O(d)
//	HasEdge(u, v int) (bool, error)         // O(log d)
//	Neighbors(v int) ([]int, error)         // O(d)
//	Degree(v int) (int, error)              // O(1)
//	Edges() []Edge                          // O(V+E)
//	AdjacencyList() [][]int                 // O(V+E)
//	Components() [][]int                    // O(V+E)
//	Clone() *Graph                          // O(V+E)
//
// Errors:
//
//	ErrInvalidVertexCount - negative vertex count at construction.
//	ErrVertexOutOfRange   - vertex index outside [0, n).
//	ErrSelfLoop           - edge whose endpoints coincide.
//
// A malformed query never answers "absent": HasEdge(3, 99) on a 10-vertex
// graph returns an *EdgeError whose cause is a *VertexError.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// adjacency and edge counter.
package core
