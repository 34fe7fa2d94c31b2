// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(a, b) constructors.
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair (i, j), i < j, in row-major order.
//   - CompleteBipartite: a, b ≥ 1; left side is block 0..a-1, right side
//     a..a+b-1; edges (l, a+r) for l asc, r asc.
//
// Complexity: O(n²) and O(a·b) edges respectively.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodComplete, "n", n, 1); err != nil {
			return err
		}
		base := appendBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, methodComplete, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if a < MinPartition || b < MinPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				methodCompleteBipartite, MinPartition, a, b, ErrTooFewVertices)
		}
		base := appendBlock(g, a+b)
		for l := 0; l < a; l++ {
			for r := 0; r < b; r++ {
				if err := link(g, methodCompleteBipartite, base, l, a+r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
