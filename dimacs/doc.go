// Package dimacs reads and writes undirected graphs in the DIMACS edge
// format used by the instance files:
//
//	c optional comment
//	p edge <n> <m>
//	e <v1> <v2>
//	...
//
// Vertices are 1-indexed on disk and 0-indexed in core.Graph. Blank lines and
// lines starting with "c" are ignored anywhere. The header must precede the
// edges and exactly m edge lines must follow it. "p col" headers from the
// colouring benchmarks are accepted as a synonym.
//
// Every parse failure is a *ParseError carrying the 1-based line number and
// wrapping one of ErrMissingHeader, ErrMalformedLine, ErrEdgeCount or the
// core error raised by an invalid edge.
package dimacs
