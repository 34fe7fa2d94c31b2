// Package gridgraph turns a rectangular grid of cells into an edom graph.
//
// What:
//
//   - GridGraph wraps a [][]int floor plan. Cells with value ≥ LandThreshold
//     are open positions a guard can stand on; the rest are walls.
//   - ToGraph emits one vertex per open cell in row-major order and joins
//     neighbouring open cells under Conn4 or Conn8 connectivity.
//   - Components groups open cells into connected regions.
//   - Parse reads a plan from whitespace-separated integer rows.
//
// Why:
//
//   - Gallery and corridor layouts are the classic eternal guarding
//     instances; a plan file is easier to author than a DIMACS edge list.
//
// Complexity:
//
//   - NewGridGraph: O(W×H). ToGraph, Components: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoOpenCells: ToGraph on a plan without open cells.
//   - ErrBadCell: Parse met a token that is not an integer.
package gridgraph
