// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// MetricEnumerations counts file/rank/square enumerations served.
	MetricEnumerations = "chessgame_enumerations_total"

	// MetricParses counts attempted notation parses.
	MetricParses = "chessgame_parses_total"

	// MetricParseErrors counts notation parses that failed.
	MetricParseErrors = "chessgame_parse_errors_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
