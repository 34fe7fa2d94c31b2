// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Both place the hub at block index 0 so that rim/leaf index i is base+i.
//
// Contract:
//   - Star: n ≥ 2 total vertices; hub joined to n-1 leaves.
//   - Wheel: n ≥ 4 total vertices; rim C_{n-1} on indices 1..n-1 plus spokes.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// Star returns a Constructor that appends K_{1,n-1} with the hub first.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		base := appendBlock(g, n)
		for leaf := 1; leaf < n; leaf++ {
			if err := link(g, methodStar, base, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that appends the wheel W_n: a hub at index 0
// joined to every vertex of the rim cycle 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		base := appendBlock(g, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			// rim edge then spoke, in increasing rim order
			if err := link(g, methodWheel, base, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
			if err := link(g, methodWheel, base, 0, 1+i); err != nil {
				return err
			}
		}

		return nil
	}
}
