package configgraph

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/domset"
	"github.com/katalvlaran/edom/transition"
)

// tasksPerWorker is the default oversubscription used to even out the
// triangular workload (row i owns m-1-i pairs).
const tasksPerWorker = 4

// rowRange is a contiguous block [lo, hi) of outer indices owned by one task.
type rowRange struct {
	lo, hi int
}

// Build constructs the configuration graph of sets over base graph g.
//
// Steps:
//  1. Validate input and resolve options.
//  2. Split rows [0, m) into contiguous ranges.
//  3. Run one task per range on an errgroup limited to Workers. A task
//     checks every pair (i, j), lo ≤ i < hi, i < j < m, with its own Oracle
//     and appends feasible pairs to its local edge list. ctx is checked once
//     per row.
//  4. After Wait, merge local lists into the graph in range order.
//
// Returns ctx.Err() if cancelled, or the first transition error.
func Build(ctx context.Context, g *core.Graph, sets []domset.Set, opts ...Option) (*Graph, error) {
	// 1) Validate and resolve options
	if g == nil {
		return nil, ErrNilGraph
	}
	ctx = ctxOrBackground(ctx)
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	cg, err := New(sets, g.VertexCount())
	if err != nil {
		return nil, err
	}
	start := time.Now()

	// 2) Partition outer rows
	ranges := partition(len(sets), o.Workers, o.TaskRows)
	local := make([][]core.Edge, len(ranges))
	pairs := make([]int64, len(ranges))

	// 3) Parallel phase: tasks own disjoint row ranges
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for t, r := range ranges {
		eg.Go(func() error {
			edges, checked, err := checkRows(ctx, g, sets, r)
			if err != nil {
				return err
			}
			local[t] = edges
			pairs[t] = checked

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 4) Synchronized merge
	for _, edges := range local {
		for _, e := range edges {
			if err := cg.AddEdge(e.V1, e.V2); err != nil {
				return nil, err
			}
		}
	}

	var total int64
	for _, p := range pairs {
		total += p
	}
	cg.stats = BuildStats{
		Pairs:   total,
		Edges:   cg.EdgeCount(),
		Tasks:   len(ranges),
		Workers: o.Workers,
		Elapsed: time.Since(start),
	}
	o.Logger.Debug("configuration graph built",
		zap.Int("configurations", len(sets)),
		zap.Int64("pairs", total),
		zap.Int("edges", cg.stats.Edges),
		zap.Int("tasks", len(ranges)),
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", cg.stats.Elapsed),
	)

	return cg, nil
}

// checkRows runs every transition check owned by r.
func checkRows(ctx context.Context, g *core.Graph, sets []domset.Set, r rowRange) ([]core.Edge, int64, error) {
	oracle := transition.NewOracle(g)
	var (
		edges   []core.Edge
		checked int64
	)
	for i := r.lo; i < r.hi; i++ {
		if err := ctx.Err(); err != nil {
			return nil, checked, err
		}
		for j := i + 1; j < len(sets); j++ {
			ok, err := oracle.CanTransition(sets[i], sets[j])
			if err != nil {
				return nil, checked, err
			}
			checked++
			if ok {
				edges = append(edges, core.Edge{V1: i, V2: j})
			}
		}
	}

	return edges, checked, nil
}

// partition splits [0, m) into contiguous ranges. With rows < 1 the range
// size is chosen so that there are about tasksPerWorker ranges per worker.
func partition(m, workers, rows int) []rowRange {
	if m == 0 {
		return nil
	}
	if rows < 1 {
		tasks := workers * tasksPerWorker
		rows = (m + tasks - 1) / tasks
	}
	out := make([]rowRange, 0, (m+rows-1)/rows)
	for lo := 0; lo < m; lo += rows {
		out = append(out, rowRange{lo: lo, hi: min(lo+rows, m)})
	}

	return out
}
