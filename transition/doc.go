// Package transition decides whether guards standing on one dominating set
// can move, simultaneously and without collisions, onto another.
//
// For sets A and B of equal size k the Oracle builds a bipartite graph with
// k guards on the left (guard i stands on A[i]) and k slots on the right
// (slot j is B[j]). Guard i may fill slot j when B[j] == A[i] (it stays) or
// B[j] is a neighbor of A[i]. The transition is feasible exactly when the
// matching package finds a perfect matching; a partial matching never counts.
//
// An Oracle snapshots the graph adjacency when created and keeps a private
// scratch buffer, so one Oracle must not be shared between goroutines.
// Create one per worker; creation costs O(V+E).
package transition
