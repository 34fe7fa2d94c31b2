// Package domset enumerates the dominating sets of a fixed size k.
//
// A set S dominates G when every vertex is in S or adjacent to a member of S.
// Sets are produced in canonical form (strictly increasing vertex ids), in
// lexicographic order, so each subset is visited exactly once.
//
// Enumeration walks all C(n,k) combinations by ordered recursion: the next
// chosen vertex is always greater than the previous one. Recursion depth is
// bounded by k. The domination test marks members and their neighbors with a
// stamp (no per-candidate clearing) and counts coverage.
//
// Complexity:
//
//   - Time:   O(C(n,k) · (k + Σ deg)); exponential by nature, never approximated.
//   - Memory: O(n + output).
//
// Errors:
//
//   - ErrKOutOfRange (via *RangeError) when k ∉ [0, n].
//   - ErrNilGraph for a nil graph.
//   - ctx.Err() when the context is cancelled mid-enumeration.
//   - any error returned by a Visit callback.
package domset
