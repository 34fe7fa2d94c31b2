package configgraph

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// ErrNilGraph indicates a nil base graph passed to Build.
var ErrNilGraph = errors.New("configgraph: base graph is nil")

// Option configures Build.
type Option func(*Options)

// Options holds the tunables of Build.
type Options struct {
	// Workers bounds the number of concurrently running tasks.
	// Values < 1 fall back to runtime.GOMAXPROCS(0).
	Workers int

	// TaskRows is the number of outer rows a task owns. Values < 1 let Build
	// split the rows into about four tasks per worker.
	TaskRows int

	// Logger receives debug output. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns Options with GOMAXPROCS workers, automatic task
// sizing and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		TaskRows: 0,
		Logger:   zap.NewNop(),
	}
}

// WithWorkers bounds the worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTaskRows fixes the number of outer rows per task.
func WithTaskRows(rows int) Option {
	return func(o *Options) { o.TaskRows = rows }
}

// WithLogger installs a zap logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// BuildStats summarizes one Build call.
type BuildStats struct {
	Pairs   int64         // transition checks performed
	Edges   int           // configuration edges inserted
	Tasks   int           // tasks scheduled
	Workers int           // pool bound used
	Elapsed time.Duration // wall time of the parallel phase and merge
}

// PassHook observes the safe marker after each fixed-point pass. The slice
// is live state and must not be modified or retained.
type PassHook func(pass int, safe []bool)

// normalize fills defaults.
func (o *Options) normalize() {
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// ctxOrBackground substitutes context.Background for nil.
func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
