package eternal

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/edom/configgraph"
	"github.com/katalvlaran/edom/domset"
	"github.com/katalvlaran/edom/transition"
)

var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("eternal: graph is nil")

	// ErrNoSolution indicates that no k in the searched window produced a
	// safe configuration.
	ErrNoSolution = errors.New("eternal: no safe configuration found")

	// ErrTimeLimitExceeded indicates the search deadline passed before an
	// answer was reached.
	ErrTimeLimitExceeded = errors.New("eternal: time limit exceeded")
)

// Status is the terminal outcome of a search.
type Status int

const (
	// StatusFound means Result.K is the minimum eternal domination number
	// (within the searched window).
	StatusFound Status = iota
	// StatusNoSolution means no k in the window had a safe configuration.
	StatusNoSolution
	// StatusTimeLimitExceeded means the deadline passed mid-search.
	StatusTimeLimitExceeded
	// StatusCanceled means the context was cancelled for another reason.
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoSolution:
		return "no-solution"
	case StatusTimeLimitExceeded:
		return "time-limit-exceeded"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// LevelStats describes the work done for one k.
type LevelStats struct {
	K              int
	DominatingSets int
	Pairs          int64
	Edges          int
	Passes         int
	Safe           int
	Enumerate      time.Duration
	Build          time.Duration
	FixedPoint     time.Duration
}

// Total returns the wall time spent on the level.
func (s LevelStats) Total() time.Duration {
	return s.Enumerate + s.Build + s.FixedPoint
}

// Level is the complete outcome of one k: its configurations, their
// configuration graph and the safe marker.
type Level struct {
	Sets  []domset.Set
	Graph *configgraph.Graph
	Safe  []bool
	Stats LevelStats
}

// Transition explains one edge between two surviving configurations.
type Transition struct {
	From, To domset.Set
	Moves    []transition.Move
}

// Result is the outcome of Solve.
type Result struct {
	RunID       string
	Vertices    int
	Edges       int
	K           int // meaningful when Status == StatusFound
	Status      Status
	SafeSets    []domset.Set
	SafeIndices []int // position of each safe set among the level's dominating sets
	Levels      []LevelStats
	Transitions []Transition
	Elapsed     time.Duration
}

// Metrics receives one observation per completed level.
type Metrics interface {
	ObserveLevel(LevelStats)
}

// Option configures Solve and Inspect.
type Option func(*Options)

// Options holds the tunables of a search.
type Options struct {
	Workers      int
	Logger       *zap.Logger
	Metrics      Metrics
	MinK, MaxK   int // MaxK < 1 means n
	ExplainLimit int // 0 disables transition explanations
	OnLevel      func(LevelStats)
}

// DefaultOptions returns the full window [1, n], GOMAXPROCS workers (0 lets
// configgraph decide), no metrics and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		Logger:  zap.NewNop(),
		MinK:    1,
		MaxK:    0,
	}
}

// WithWorkers bounds the transition-check pool.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger installs a zap logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics installs a per-level observer.
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithKRange restricts the search to lo ≤ k ≤ hi. hi < 1 means n.
func WithKRange(lo, hi int) Option {
	return func(o *Options) {
		o.MinK = lo
		o.MaxK = hi
	}
}

// WithExplain collects up to limit guard-move plans between adjacent
// surviving configurations.
func WithExplain(limit int) Option {
	return func(o *Options) { o.ExplainLimit = limit }
}

// WithOnLevel installs a hook called after every completed k.
func WithOnLevel(fn func(LevelStats)) Option {
	return func(o *Options) { o.OnLevel = fn }
}
