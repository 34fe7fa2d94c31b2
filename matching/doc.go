// Package matching computes maximum matchings in bipartite graphs using
// Kuhn's augmenting-path algorithm.
//
// A Bipartite graph has a left side [0, p) and a right side [p, p+q).
// Edges may only join the two sides; NewBipartite rejects anything else up
// front, so MaxMatching itself never fails.
//
// Algorithm (Kuhn):
//
//	for each left vertex v in ascending order:
//	    reset visit marks
//	    try(v): for each right neighbor u of v (ascending):
//	        if u is free, or try(match[u]) succeeds: match[u] = v; return true
//
// Left adjacency is kept sorted, so the matching returned for a given input
// is reproducible ("smallest neighbor first").
//
// Recursion depth of try is bounded by p, since each left vertex is visited
// at most once per augmentation attempt.
//
// Complexity:
//
//   - Time:   O(V·E).
//   - Memory: O(V + E).
//
// A Bipartite value is immutable after construction and MaxMatching
// allocates its own state, so concurrent calls are safe.
package matching
