// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// impl_grid.go - Grid(rows, cols) and Grid3D(x, y, z) constructors.
//
// Canonical model:
//   • Orthogonal lattices: 4-neighbourhood in 2D, 6-neighbourhood in 3D.
//   • Vertices in row-major order: (r,c) ↦ r*cols + c and
//     (i,j,k) ↦ i*y*z + j*z + k.
//   • For each cell emit the edge to every "forward" neighbour that exists,
//     last axis first.
//
// Contract:
//   • Every dimension ≥ 1 (else ErrTooFewVertices). A 1×1 grid is a single vertex.
//
// Complexity:
//   • Time: O(V) vertices + O(V) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// Grid returns a Constructor that appends a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// 1) Validate
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order
		base := appendBlock(g, rows*cols)
		at := func(r, c int) int { return r*cols + c }

		// 3) Right then bottom neighbour
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, methodGrid, base, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, methodGrid, base, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Grid3D returns a Constructor that appends an x×y×z lattice.
func Grid3D(x, y, z int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if x < MinGridDim || y < MinGridDim || z < MinGridDim {
			return fmt.Errorf("%s: dims=%dx%dx%d (each must be ≥ %d): %w",
				methodGrid3D, x, y, z, MinGridDim, ErrTooFewVertices)
		}

		base := appendBlock(g, x*y*z)
		at := func(i, j, k int) int { return i*y*z + j*z + k }

		for i := 0; i < x; i++ {
			for j := 0; j < y; j++ {
				for k := 0; k < z; k++ {
					u := at(i, j, k)
					if k+1 < z {
						if err := link(g, methodGrid3D, base, u, at(i, j, k+1)); err != nil {
							return err
						}
					}
					if j+1 < y {
						if err := link(g, methodGrid3D, base, u, at(i, j+1, k)); err != nil {
							return err
						}
					}
					if i+1 < x {
						if err := link(g, methodGrid3D, base, u, at(i+1, j, k)); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}
