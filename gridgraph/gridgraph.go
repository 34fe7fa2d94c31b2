package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/edom/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied. Vertices are numbered over open cells in
// row-major order.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    make([][]int, h),
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		vertex:        make([]int, w*h),
	}
	// E and S first so ToGraph can add each edge once from its upper-left end.
	if opts.Conn == Conn8 {
		gg.neighborOffsets = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	} else {
		gg.neighborOffsets = [][2]int{{1, 0}, {0, 1}}
	}
	for y := 0; y < h; y++ {
		gg.CellValues[y] = make([]int, w)
		copy(gg.CellValues[y], values[y])
		for x := 0; x < w; x++ {
			gg.vertex[gg.index(x, y)] = -1
			if gg.CellValues[y][x] >= gg.LandThreshold {
				gg.vertex[gg.index(x, y)] = len(gg.cells)
				gg.cells = append(gg.cells, Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
			}
		}
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is an in-bounds open cell.
func (gg *GridGraph) Open(x, y int) bool {
	return gg.InBounds(x, y) && gg.vertex[gg.index(x, y)] >= 0
}

// OpenCount is the number of open cells, i.e. the vertex count of ToGraph.
func (gg *GridGraph) OpenCount() int { return len(gg.cells) }

// Vertex returns the vertex of open cell (x,y), or false for walls and
// out-of-bounds coordinates.
func (gg *GridGraph) Vertex(x, y int) (int, bool) {
	if !gg.Open(x, y) {
		return 0, false
	}

	return gg.vertex[gg.index(x, y)], true
}

// Cell returns the plan cell behind vertex v.
func (gg *GridGraph) Cell(v int) (Cell, error) {
	if v < 0 || v >= len(gg.cells) {
		return Cell{}, fmt.Errorf("gridgraph: vertex %d: %w", v, core.ErrVertexOutOfRange)
	}

	return gg.cells[v], nil
}

// ToGraph builds the guarding graph: one vertex per open cell, one edge per
// pair of neighbouring open cells.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToGraph() (*core.Graph, error) {
	if len(gg.cells) == 0 {
		return nil, ErrNoOpenCells
	}
	g, err := core.NewGraph(len(gg.cells))
	if err != nil {
		return nil, err
	}
	for u, c := range gg.cells {
		for _, d := range gg.neighborOffsets {
			v, ok := gg.Vertex(c.X+d[0], c.Y+d[1])
			if !ok {
				continue
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("gridgraph: %w", err)
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
