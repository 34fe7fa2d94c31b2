// SPDX-License-Identifier: MIT
// Package: edom/builder
//
// impl_random.go - RandomGNP(n, p) and RandomRegular(n, d) constructors.
//
// RandomGNP (Erdős–Rényi G(n,p)):
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - Each unordered pair {i,j}, i<j, is included independently with
//     probability p, trials in i asc, j asc order.
//   - cfg.rng is required when 0 < p < 1; p ∈ {0,1} is deterministic.
//
// RandomRegular (stub matching):
//   - n ≥ 1, 0 ≤ d < n, n·d even; cfg.rng required.
//   - Shuffle n·d stubs and pair them consecutively; reject pairings with a
//     loop or a repeated pair and reshuffle, at most maxStubMatchingAttempts
//     times, then ErrConstructFailed.
//
// Determinism: fixed trial order ⇒ identical graphs for the same seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// RandomGNP returns a Constructor that samples G(n, p).
func RandomGNP(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate size, probability, then RNG
		if err := validateMin(methodRandomGNP, "n", n, 1); err != nil {
			return err
		}
		if err := validateProbability(methodRandomGNP, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGNP, ErrNeedRandSource)
		}

		// 2) Vertices
		base := appendBlock(g, n)

		// 3) Bernoulli trials per unordered pair
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == MaxProbability:
					keep = true
				case p == MinProbability:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := link(g, methodRandomGNP, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRegular returns a Constructor that samples a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate: n≥1, 0≤d<n, n·d even
		if err := validateMin(methodRandomRegular, "n", n, 1); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 2) Stubs: vertex i repeated d times
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 3) Bounded reshuffles until a simple pairing appears
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			// 4) Apply only after validation so a failure adds nothing
			base := appendBlock(g, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, methodRandomRegular, base, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a loop-free graph
// without repeated edges.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
