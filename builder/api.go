// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates an empty graph,
//     resolves cfg, runs cons in order.
//   - Every constructor appends a fresh block of vertices numbered after the
//     ones already present, so composing constructors yields a disjoint union.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// Constructor appends a deterministic topology to g using the resolved
// builderConfig. Constructors MUST validate parameters before adding any
// vertex and return sentinel errors (no panics).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from opts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph g, appending each block after the
// vertices g already has.
func Apply(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)                  P_n, n ≥ 2.
// Cycle(n)                 C_n, n ≥ 3.
// Star(n)                  K_{1,n-1}, hub first, n ≥ 2.
// Wheel(n)                 C_{n-1} plus a hub joined to every rim vertex, n ≥ 4.
// Complete(n)              K_n, n ≥ 1.
// CompleteBipartite(a, b)  K_{a,b}, left block first, a, b ≥ 1.
// Grid(rows, cols)         4-neighbourhood lattice, row-major ids.
// Grid3D(x, y, z)          6-neighbourhood lattice, index = i*y*z + j*z + k.
// RandomGNP(n, p)          Erdős–Rényi G(n, p); needs WithSeed/WithRand when 0 < p < 1.
// RandomRegular(n, d)      d-regular via stub matching; needs an RNG.
// Isolated(n)              n vertices without edges, n ≥ 1.
