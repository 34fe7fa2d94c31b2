package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/edom/eternal"
)

// Namespace prefixes every metric name.
const Namespace = "edom"

// ErrEmptyPath indicates a textfile export without a destination.
var ErrEmptyPath = errors.New("metrics: textfile path is empty")

// Recorder turns eternal.LevelStats observations into Prometheus samples.
type Recorder struct {
	DominatingSets prometheus.Counter
	Checks         prometheus.Counter
	Edges          prometheus.Counter
	Passes         prometheus.Counter
	Safe           prometheus.Gauge
	LevelDuration  *prometheus.HistogramVec
}

var _ eternal.Metrics = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		DominatingSets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dominating_sets_total",
			Help:      "Dominating sets enumerated across all levels.",
		}),
		Checks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "transition_checks_total",
			Help:      "Pairwise guard-transition checks performed.",
		}),
		Edges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "configuration_edges_total",
			Help:      "Configuration graph edges inserted.",
		}),
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "fixed_point_passes_total",
			Help:      "Safe-set fixed point passes run.",
		}),
		Safe: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "safe_configurations",
			Help:      "Safe configurations at the most recently completed level.",
		}),
		LevelDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "level_duration_seconds",
			Help:      "Wall time of one level by phase.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 12),
		}, []string{"phase"}),
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range r.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// ObserveLevel records one completed level.
func (r *Recorder) ObserveLevel(s eternal.LevelStats) {
	r.DominatingSets.Add(float64(s.DominatingSets))
	r.Checks.Add(float64(s.Pairs))
	r.Edges.Add(float64(s.Edges))
	r.Passes.Add(float64(s.Passes))
	r.Safe.Set(float64(s.Safe))
	r.LevelDuration.WithLabelValues("enumerate").Observe(s.Enumerate.Seconds())
	r.LevelDuration.WithLabelValues("build").Observe(s.Build.Seconds())
	r.LevelDuration.WithLabelValues("fixed_point").Observe(s.FixedPoint.Seconds())
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.DominatingSets,
		r.Checks,
		r.Edges,
		r.Passes,
		r.Safe,
		r.LevelDuration,
	}
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
