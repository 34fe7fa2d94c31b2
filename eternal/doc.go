// Package eternal searches for the minimum eternal domination number of a
// graph: the smallest number of guards that, standing on a dominating set,
// can answer any infinite sequence of single-vertex attacks by moving at
// most one step each while remaining a dominating set.
//
// Solve tries k = 1, 2, ..., n. For each k it
//
//  1. enumerates the dominating sets of size k (package domset),
//  2. builds their configuration graph in parallel (package configgraph),
//  3. runs the safe-set fixed point,
//
// and stops at the first k with a surviving configuration. A simple graph
// with at least one vertex always succeeds by k = n, where the only
// configuration is the full vertex set.
//
// Cancellation: ctx is checked before every k and inside enumeration and
// the pairwise transition loop. A context deadline ends the search with
// StatusTimeLimitExceeded and ErrTimeLimitExceeded; no answer is salvaged
// from an abandoned k.
//
// Options:
//
//   - WithWorkers(n)        bound the transition-check pool.
//   - WithLogger(l)         zap logger; every line carries the run id.
//   - WithMetrics(m)        per-level observations (see package metrics).
//   - WithKRange(lo, hi)    restrict the search window.
//   - WithExplain(limit)    collect guard moves between surviving configurations.
//   - WithOnLevel(fn)       hook invoked after every completed k.
package eternal
