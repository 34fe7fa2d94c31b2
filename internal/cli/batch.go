package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/edom/config"
	"github.com/katalvlaran/edom/dimacs"
	"github.com/katalvlaran/edom/eternal"
	"github.com/katalvlaran/edom/metrics"
	"github.com/katalvlaran/edom/report"
)

// ErrBatchFailures reports that at least one instance could not be loaded
// or searched. Timeouts and exhausted k ranges are ordinary rows.
var ErrBatchFailures = errors.New("batch: some instances failed")

// runBatch implements "edom batch <dir>": every regular file in dir is
// solved in name order under its own time limit. One CSV row per instance
// goes to -csv (stdout by default); -out keeps each text transcript as
// <instance>.dat.
func runBatch(ctx context.Context, args []string, env Env) error {
	// 1) Flags and config
	f := newRunFlags("batch", env.Stderr)
	csvPath := f.fs.String("csv", "", "CSV summary path (default stdout)")
	outDir := f.fs.String("out", "", "directory for per-instance transcripts")
	rest, err := f.parse(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return usageErrorf("batch: expected exactly one instance directory, got %d arguments", len(rest))
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

	// 2) Instances
	files, err := instanceFiles(rest[0])
	if err != nil {
		return err
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("batch: %w", err)
		}
	}

	// 3) Sinks
	var sink io.Writer = env.Stdout
	if *csvPath != "" {
		fh, err := os.Create(*csvPath)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		defer fh.Close()
		sink = fh
	}
	table, err := report.NewCSV(sink)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	// 4) Solve in order
	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := report.InstanceName(path)
		res, err := batchOne(ctx, path, name, *outDir, cfg, log, rec)
		switch {
		case err == nil,
			errors.Is(err, eternal.ErrTimeLimitExceeded),
			errors.Is(err, eternal.ErrNoSolution):
		default:
			failed++
			log.Error("instance failed", zap.String("instance", name), zap.Error(err))
			if res == nil {
				res = &eternal.Result{Status: eternal.StatusNoSolution}
			}
		}
		if err := table.Add(name, res); err != nil {
			return err
		}
	}
	if err := table.Flush(); err != nil {
		return err
	}
	if err := writeMetrics(cfg, reg, log); err != nil {
		return err
	}
	log.Info("batch finished", zap.Int("instances", len(files)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailures, failed, len(files))
	}

	return nil
}

// batchOne solves one instance and optionally stores its transcript.
func batchOne(ctx context.Context, path, name, outDir string, cfg *config.Config, log *zap.Logger, m eternal.Metrics) (*eternal.Result, error) {
	g, err := dimacs.Load(path)
	if err != nil {
		return nil, err
	}
	res, solveErr := solveOne(ctx, g, cfg, log.With(zap.String("instance", name)), m)
	if res != nil && outDir != "" {
		if err := saveTranscript(filepath.Join(outDir, name+".dat"), name, res); err != nil {
			return res, err
		}
	}

	return res, solveErr
}

func saveTranscript(path, name string, res *eternal.Result) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return report.Text(fh, name, res)
}

// instanceFiles lists the regular, non-hidden files of dir sorted by name.
func instanceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() || e.Name()[0] == '.' {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)

	return out, nil
}
