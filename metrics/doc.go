// Package metrics exports per-level search statistics as Prometheus
// collectors.
//
// A Recorder satisfies eternal.Metrics and is installed with
// eternal.WithMetrics. Collectors are registered on the Registerer passed to
// NewRecorder, so tests and CLI runs use their own prometheus.Registry rather
// than the process-global default.
//
// A CLI run is short-lived and exposes no HTTP endpoint; WriteTextfile dumps a
// Gatherer in the text exposition format for node_exporter's textfile
// collector.
package metrics
