package eternal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/edom/configgraph"
	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/domset"
	"github.com/katalvlaran/edom/transition"
)

// Solve returns the minimum eternal domination number of g together with
// the safe configurations at that k.
//
// On success Result.Status is StatusFound and err is nil. Otherwise the
// returned Result is still populated with every completed level, and err
// wraps ErrNoSolution, ErrTimeLimitExceeded (which also matches
// context.DeadlineExceeded) or the cancellation cause.
//
// A graph with zero vertices yields K = 0 with the empty configuration.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate and resolve options
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := resolve(opts)

	res := &Result{
		RunID:    uuid.NewString(),
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	}
	log := o.Logger.With(zap.String("run_id", res.RunID))
	o.Logger = log
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	log.Info("search started",
		zap.Int("vertices", res.Vertices),
		zap.Int("edges", res.Edges),
	)

	// 2) Degenerate graph
	n := res.Vertices
	if n == 0 {
		res.K = 0
		res.Status = StatusFound
		res.SafeSets = []domset.Set{{}}
		res.SafeIndices = []int{0}
		log.Info("empty graph", zap.Int("k", 0))

		return res, nil
	}

	// 3) Resolve window
	lo, hi := window(o, n)

	// 4) Ascend k
	for k := lo; k <= hi; k++ {
		if err := ctx.Err(); err != nil {
			return interrupted(res, log, k, err)
		}
		lvl, err := runLevel(ctx, g, k, o)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return interrupted(res, log, k, ctxErr)
			}

			return res, fmt.Errorf("eternal: k=%d: %w", k, err)
		}

		res.Levels = append(res.Levels, lvl.Stats)
		if o.Metrics != nil {
			o.Metrics.ObserveLevel(lvl.Stats)
		}
		if o.OnLevel != nil {
			o.OnLevel(lvl.Stats)
		}
		log.Debug("level done",
			zap.Int("k", k),
			zap.Int("dominating_sets", lvl.Stats.DominatingSets),
			zap.Int("edges", lvl.Stats.Edges),
			zap.Int("passes", lvl.Stats.Passes),
			zap.Int("safe", lvl.Stats.Safe),
			zap.Duration("elapsed", lvl.Stats.Total()),
		)

		if lvl.Stats.Safe == 0 {
			continue
		}

		// 5) Found
		res.K = k
		res.Status = StatusFound
		res.SafeSets = lvl.Graph.SafeSets()
		res.SafeIndices = lvl.Graph.SafeIndices()
		if o.ExplainLimit > 0 {
			ts, err := explain(g, lvl, o.ExplainLimit)
			if err != nil {
				return res, fmt.Errorf("eternal: explain k=%d: %w", k, err)
			}
			res.Transitions = ts
		}
		log.Info("search finished",
			zap.Int("k", k),
			zap.Int("safe_configurations", len(res.SafeSets)),
			zap.Duration("elapsed", time.Since(start)),
		)

		return res, nil
	}

	res.Status = StatusNoSolution
	log.Info("no safe configuration", zap.Int("min_k", lo), zap.Int("max_k", hi))

	return res, fmt.Errorf("%w for k in [%d, %d]", ErrNoSolution, lo, hi)
}

// Inspect runs a single k and returns every intermediate artifact. It does
// not search: a level without safe configurations is a valid outcome.
func Inspect(ctx context.Context, g *core.Graph, k int, opts ...Option) (*Level, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := resolve(opts)
	lvl, err := runLevel(ctx, g, k, o)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("eternal: k=%d: %w: %w", k, ErrTimeLimitExceeded, err)
		}

		return nil, fmt.Errorf("eternal: k=%d: %w", k, err)
	}
	if o.Metrics != nil {
		o.Metrics.ObserveLevel(lvl.Stats)
	}

	return lvl, nil
}

// runLevel performs enumeration, construction and the fixed point for k.
func runLevel(ctx context.Context, g *core.Graph, k int, o Options) (*Level, error) {
	stats := LevelStats{K: k}

	o.Logger.Debug("enumerating", zap.Int("k", k), zap.Int("candidates", domset.Count(g.VertexCount(), k)))
	t := time.Now()
	sets, err := domset.Generate(ctx, g, k)
	if err != nil {
		return nil, err
	}
	stats.Enumerate = time.Since(t)
	stats.DominatingSets = len(sets)

	cg, err := configgraph.Build(ctx, g, sets,
		configgraph.WithWorkers(o.Workers),
		configgraph.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, err
	}
	bs := cg.Stats()
	stats.Build = bs.Elapsed
	stats.Pairs = bs.Pairs
	stats.Edges = bs.Edges

	t = time.Now()
	safe := cg.FindSafe()
	stats.FixedPoint = time.Since(t)
	stats.Passes = len(cg.Trace())
	for _, s := range safe {
		if s {
			stats.Safe++
		}
	}

	return &Level{Sets: sets, Graph: cg, Safe: safe, Stats: stats}, nil
}

// explain plans the guard moves along configuration edges whose endpoints
// both survived, in row-major order, stopping after limit entries.
func explain(g *core.Graph, lvl *Level, limit int) ([]Transition, error) {
	o := transition.NewOracle(g)
	adj := lvl.Graph.AdjacencyList()
	var out []Transition
	for i, nbrs := range adj {
		if !lvl.Safe[i] {
			continue
		}
		for _, j := range nbrs {
			if j <= i || !lvl.Safe[j] {
				continue
			}
			moves, ok, err := o.Plan(lvl.Sets[i], lvl.Sets[j])
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			out = append(out, Transition{From: lvl.Sets[i], To: lvl.Sets[j], Moves: moves})
			if len(out) == limit {
				return out, nil
			}
		}
	}

	return out, nil
}

// interrupted finalises res after the context ended before level k.
func interrupted(res *Result, log *zap.Logger, k int, cause error) (*Result, error) {
	if errors.Is(cause, context.DeadlineExceeded) {
		res.Status = StatusTimeLimitExceeded
		log.Warn("time limit exceeded", zap.Int("k", k))

		return res, fmt.Errorf("eternal: k=%d: %w: %w", k, ErrTimeLimitExceeded, cause)
	}
	res.Status = StatusCanceled
	log.Warn("search canceled", zap.Int("k", k), zap.Error(cause))

	return res, fmt.Errorf("eternal: k=%d: %w", k, cause)
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}

// window clamps [MinK, MaxK] to [1, n].
func window(o Options, n int) (lo, hi int) {
	lo, hi = o.MinK, o.MaxK
	if lo < 1 {
		lo = 1
	}
	if hi < 1 || hi > n {
		hi = n
	}

	return lo, hi
}
