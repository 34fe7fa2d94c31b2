// Package builder generates test and benchmark graphs for the eternal
// domination search.
//
// Every topology is a Constructor closure applied by BuildGraph (fresh graph)
// or Apply (existing graph). A constructor appends its own block of vertices,
// numbered after those already present, so
//
//	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
//
// yields two disjoint triangles on vertices 0..2 and 3..5.
//
// Deterministic families: Path, Cycle, Star, Wheel, Complete,
// CompleteBipartite, Grid, Grid3D, Isolated. Stochastic families: RandomGNP
// and RandomRegular, seeded with WithSeed or WithRand.
//
// Validation failures never panic; they wrap one of ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed. Option
// constructors (WithRand(nil)) do panic, as they indicate programmer error.
package builder
