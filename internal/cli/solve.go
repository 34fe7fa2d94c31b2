package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/edom/config"
	"github.com/katalvlaran/edom/core"
	"github.com/katalvlaran/edom/dimacs"
	"github.com/katalvlaran/edom/eternal"
	"github.com/katalvlaran/edom/metrics"
	"github.com/katalvlaran/edom/report"
)

// runSolve implements "edom solve <file>".
func runSolve(ctx context.Context, args []string, env Env) error {
	// 1) Flags and config
	f := newRunFlags("solve", env.Stderr)
	rest, err := f.parse(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return usageErrorf("solve: expected exactly one instance file, got %d arguments", len(rest))
	}
	cfg, err := f.config(env.Lookup)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// 2) Input
	g, err := dimacs.Load(rest[0])
	if err != nil {
		return err
	}

	// 3) Search
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}
	res, solveErr := solveOne(ctx, g, cfg, log, rec)

	// 4) Report whatever was reached, even after a timeout
	if res != nil {
		if err := report.Write(env.Stdout, cfg.Output, report.InstanceName(rest[0]), res); err != nil {
			return err
		}
	}
	if err := writeMetrics(cfg, reg, log); err != nil {
		return err
	}

	return solveErr
}

// solveOne runs the search for g under cfg's time limit.
func solveOne(ctx context.Context, g *core.Graph, cfg *config.Config, log *zap.Logger, m eternal.Metrics) (*eternal.Result, error) {
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	return eternal.Solve(ctx, g, searchOptions(cfg, log, m)...)
}

func searchOptions(cfg *config.Config, log *zap.Logger, m eternal.Metrics) []eternal.Option {
	opts := []eternal.Option{
		eternal.WithWorkers(cfg.Workers),
		eternal.WithLogger(log),
		eternal.WithKRange(cfg.MinK, cfg.MaxK),
		eternal.WithExplain(cfg.Explain),
	}
	if m != nil {
		opts = append(opts, eternal.WithMetrics(m))
	}

	return opts
}

// writeMetrics dumps reg to cfg.MetricsFile when one is configured.
func writeMetrics(cfg *config.Config, reg prometheus.Gatherer, log *zap.Logger) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
		return err
	}
	log.Debug("metrics written", zap.String("path", cfg.MetricsFile))

	return nil
}

// runInspect implements "edom inspect -k K <file>".
func runInspect(ctx context.Context, args []string, env Env) error {
	f := newRunFlags("inspect", env.Stderr)
	k := f.fs.Int("k", -1, "dominating set size (required)")
	rest, err := f.parse(args)
	if err != nil {
		return err
	}
	if *k < 0 {
		return usageErrorf("inspect: -k is required")
	}
	if len(rest) != 1 {
		return usageErrorf("inspect: expected exactly one instance file, got %d arguments", len(rest))
	}
	cfg, err := f.config(env.Lookup)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := dimacs.Load(rest[0])
	if err != nil {
		return err
	}
	if *k > g.VertexCount() {
		return usageErrorf("inspect: k=%d exceeds vertex count %d", *k, g.VertexCount())
	}

	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}
	start := time.Now()
	lvl, err := eternal.Inspect(ctx, g, *k, eternal.WithWorkers(cfg.Workers), eternal.WithLogger(log))
	if err != nil {
		if errors.Is(err, eternal.ErrTimeLimitExceeded) {
			fmt.Fprintf(env.Stdout, "Time limit exceeded: %d ms\n", time.Since(start).Milliseconds())
		}

		return err
	}
	if err := report.TextLevel(env.Stdout, *k, lvl); err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.Stdout, "Running time: %d ms\n", time.Since(start).Milliseconds())

	return err
}
