// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges (i, i+1) for i = 0..n-2, then the closing edge (n-1, 0).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/edom/core"

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := appendBlock(g, n)
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
