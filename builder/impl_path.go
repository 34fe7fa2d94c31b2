// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// impl_path.go - Path(n) and Isolated(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; edges (i-1, i) for i = 1..n-1 in increasing order.
//   - Isolated: n ≥ 1; no edges.
//
// Complexity: O(n) vertices + O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/edom/core"

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := appendBlock(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, methodPath, base, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that appends n vertices with no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodIsolated, "n", n, 1); err != nil {
			return err
		}
		appendBlock(g, n)

		return nil
	}
}
