// Package metrics provides Prometheus instrumentation for pipeline runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run results used as the "result" label.
const (
	ResultOK      = "ok"
	ResultMissing = "missing_input"
	ResultError   = "error"
)

// Metrics tracks run counts, listing sizes and run durations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Attendees   *prometheus.GaugeVec
	DroppedRows prometheus.Gauge
	RunDuration prometheus.Histogram
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_runs_total",
			Help: "Total number of pipeline runs by result",
		}, []string{"result"}),
		Attendees: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roster_attendees",
			Help: "Unique attendees in the last successful run by category",
		}, []string{"category"}),
		DroppedRows: factory.NewGauge(prometheus.GaugeOpts{
			Name: "roster_dropped_rows",
			Help: "Rows without a first or last name in the last successful run",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_run_duration_seconds",
			Help:    "Duration of pipeline runs from load to render",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementRun records a finished run.
func (m *Metrics) IncrementRun(result string) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(result).Inc()
}

// SetListing records the size of one listing.
func (m *Metrics) SetListing(category string, n int) {
	if m == nil {
		return
	}
	m.Attendees.WithLabelValues(category).Set(float64(n))
}

// SetDropped records how many rows were skipped.
func (m *Metrics) SetDropped(n int) {
	if m == nil {
		return
	}
	m.DroppedRows.Set(float64(n))
}

// ObserveRun records the duration of a run.
// Call with time.Now() at the start of the run.
func (m *Metrics) ObserveRun(start time.Time) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(time.Since(start).Seconds())
}
