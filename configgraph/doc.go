// Package configgraph builds the configuration graph of a base graph and
// reduces it to its safe configurations.
//
// Vertices of the configuration graph are indices into a list of dominating
// sets of one size k; an edge joins two sets when guards can move from one
// to the other in a single step (see package transition).
//
// Build partitions the m(m-1)/2 pair checks into tasks owning contiguous
// ranges of the outer index i. Tasks run on a bounded errgroup pool, each
// with its own transition.Oracle, and collect edges into task-local lists.
// Once every task has finished the lists are merged into the shared graph in
// task order, so the result does not depend on scheduling.
//
// FindSafe computes the safe-set fixed point single-threaded:
//
//	safe[i] = true for all i
//	repeat
//	    for each i with safe[i]:
//	        U = S_i ∪ ⋃{ S_j : j adjacent to i, safe[j] }
//	        if U ≠ V(G): safe[i] = false
//	until a pass flips nothing
//
// Flips within a pass are visible to later checks of the same pass. A
// configuration never becomes safe again, so at most m+1 passes run. The
// marker survives between calls: calling FindSafe again on a converged
// graph takes one pass and flips nothing.
package configgraph
