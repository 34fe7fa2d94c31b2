package transition

import (
	"fmt"
	"io"

	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/matching"
)

const opTransition = "Transition"

// Move is one guard's step in a transition, in 0-based vertex ids.
// From == To means the guard stays.
type Move struct {
	From, To int
}

// String renders the move 1-indexed, as printed in transition reports.
func (m Move) String() string {
	return fmt.Sprintf("Guard on %d moves to %d", m.From+1, m.To+1)
}

// Oracle answers guard-transition queries over a fixed base graph.
type Oracle struct {
	adj [][]int
	// slot[v] is 1+index of v in the current target set, 0 when absent.
	slot []int
}

// NewOracle snapshots g's adjacency.
func NewOracle(g *core.Graph) *Oracle {
	adj := g.AdjacencyList()

	return &Oracle{adj: adj, slot: make([]int, len(adj))}
}

// CanTransition reports whether guards on a can move onto b in one step.
// Sets of different sizes are simply infeasible (false, nil). A vertex
// outside the graph yields a *core.EdgeError naming the offending pair.
func (o *Oracle) CanTransition(a, b []int) (bool, error) {
	m, err := o.match(a, b)
	if err != nil || m == nil {
		return false, err
	}

	return m.IsPerfect(len(a)), nil
}

// Plan returns the guard-by-guard moves of a feasible transition, ordered by
// target slot. ok is false when the transition is infeasible.
func (o *Oracle) Plan(a, b []int) (moves []Move, ok bool, err error) {
	m, err := o.match(a, b)
	if err != nil || m == nil || !m.IsPerfect(len(a)) {
		return nil, false, err
	}
	moves = make([]Move, 0, len(b))
	for j, i := range m.Right {
		moves = append(moves, Move{From: a[i], To: b[j]})
	}

	return moves, true, nil
}

// match builds the guard/slot bipartite graph and runs the matcher.
// It returns (nil, nil) on a size mismatch.
//
// Steps:
//  1. Reject mismatched sizes and invalid vertices.
//  2. Index b: slot[b[j]] = j+1.
//  3. For each guard i add (i, k+j) for its own vertex and every neighbor in b.
//  4. Clear the slot index and run MaxMatching.
func (o *Oracle) match(a, b []int) (*matching.Matching, error) {
	if len(a) != len(b) {
		return nil, nil
	}
	k := len(a)
	if err := o.validate(a, b); err != nil {
		return nil, err
	}

	for j, v := range b {
		o.slot[v] = j + 1
	}
	edges := make([]core.Edge, 0, 2*k)
	for i, v := range a {
		if j := o.slot[v]; j > 0 {
			edges = append(edges, core.Edge{V1: i, V2: k + j - 1})
		}
		for _, u := range o.adj[v] {
			if j := o.slot[u]; j > 0 {
				edges = append(edges, core.Edge{V1: i, V2: k + j - 1})
			}
		}
	}
	for _, v := range b {
		o.slot[v] = 0
	}

	bg, err := matching.NewBipartite(k, k, edges)
	if err != nil {
		// Unreachable for validated input; surface rather than swallow.
		return nil, fmt.Errorf("transition: %w", err)
	}
	m := bg.MaxMatching()

	return &m, nil
}

// validate checks that every vertex of a and b lies in the graph.
func (o *Oracle) validate(a, b []int) error {
	n := len(o.adj)
	for i := range a {
		for _, v := range [2]int{a[i], b[i]} {
			if v < 0 || v >= n {
				return &core.EdgeError{
					Op:   opTransition,
					Edge: core.Edge{V1: a[i], V2: b[i]},
					Err:  &core.VertexError{Vertex: v, N: n},
				}
			}
		}
	}

	return nil
}

// WriteReport prints a transition in the classic text form:
//
//	Guard transition:
//	Guard on 1 moves to 2
func WriteReport(w io.Writer, moves []Move) error {
	if _, err := fmt.Fprintln(w, "Guard transition:"); err != nil {
		return err
	}
	for _, m := range moves {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}

	return nil
}
