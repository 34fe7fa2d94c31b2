package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/edom/config"
	"github.com/katalvlaran/edom/logging"
)

// runFlags are the settings shared by solve, inspect and batch. Values given
// on the command line override the config file and environment.
type runFlags struct {
	fs *flag.FlagSet

	configPath  string
	workers     int
	timeLimit   time.Duration
	minK, maxK  int
	explain     int
	output      string
	metricsFile string
	logLevel    string
	logFormat   string
}

// newRunFlags registers the shared flags on a fresh FlagSet.
func newRunFlags(name string, stderr io.Writer) *runFlags {
	f := &runFlags{fs: flag.NewFlagSet(programName+" "+name, flag.ContinueOnError)}
	f.fs.SetOutput(stderr)
	def := config.Default()

	f.fs.StringVar(&f.configPath, "config", "", "YAML config file")
	f.fs.IntVar(&f.workers, "workers", def.Workers, "transition-check workers (0 = GOMAXPROCS)")
	f.fs.DurationVar(&f.timeLimit, "time-limit", def.TimeLimit, "search deadline per instance (0 = none)")
	f.fs.IntVar(&f.minK, "min-k", def.MinK, "smallest k to try")
	f.fs.IntVar(&f.maxK, "max-k", def.MaxK, "largest k to try (0 = n)")
	f.fs.IntVar(&f.explain, "explain", def.Explain, "report up to N guard transitions between safe sets")
	f.fs.StringVar(&f.output, "output", def.Output, "report format: text|yaml|json")
	f.fs.StringVar(&f.metricsFile, "metrics-file", def.MetricsFile, "write Prometheus metrics to this textfile")
	f.fs.StringVar(&f.logLevel, "log-level", def.Log.Level, "debug|info|warn|error")
	f.fs.StringVar(&f.logFormat, "log-format", def.Log.Format, "console|json")

	return f
}

// parse parses args and returns the positional arguments.
func (f *runFlags) parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, &ExitError{Code: ExitUsage, Err: err}
	}

	return f.fs.Args(), nil
}

// config loads file and environment settings, overlays explicitly set
// flags and validates the result.
func (f *runFlags) config(lookup config.LookupFunc) (*config.Config, error) {
	cfg, err := config.LoadWith(f.configPath, lookup)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) || errors.Is(err, config.ErrInvalidEnv) {
			return nil, &ExitError{Code: ExitUsage, Err: err}
		}

		return nil, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "workers":
			cfg.Workers = f.workers
		case "time-limit":
			cfg.TimeLimit = f.timeLimit
		case "min-k":
			cfg.MinK = f.minK
		case "max-k":
			cfg.MaxK = f.maxK
		case "explain":
			cfg.Explain = f.explain
		case "output":
			cfg.Output = f.output
		case "metrics-file":
			cfg.MetricsFile = f.metricsFile
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "log-format":
			cfg.Log.Format = f.logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: err}
	}

	return cfg, nil
}

// newLogger builds the run logger from cfg.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	return l.Named(programName), nil
}
