// Package edom computes the eternal domination number of small undirected
// graphs: the fewest guards that can answer any infinite sequence of
// attacks, each guard moving at most one edge per attack, while the guarded
// positions stay a dominating set.
//
// The search runs bottom-up over k:
//
//	domset/      enumerate every dominating set of size k
//	matching/    Kuhn bipartite matching between two guard placements
//	transition/  feasibility of a one-step move and the guard moves
//	configgraph/ configuration graph over the dominating sets (parallel)
//	eternal/     safe-set fixed point per level, k search, Solve/Inspect
//
// Around the engine:
//
//	core/      compact integer-vertex undirected graph
//	builder/   deterministic graph families and seeded random graphs
//	gridgraph/ floor plans ([][]int) as graphs
//	dimacs/    DIMACS edge-format reader and writer
//	report/    text transcripts, YAML/JSON documents, CSV summaries
//	metrics/   Prometheus recorder for per-level search statistics
//	config/    YAML file and EDOM_* environment settings
//	logging/   zap logger construction
//	cmd/edom   solve, inspect, batch and generate commands
//
// Quick example, a path on three vertices:
//
//	1───2───3
//
// One guard on 2 dominates, but after answering an attack on 1 vertex 3 is
// unguarded. Two guards suffice: γ∞(P3) = 2.
package edom
