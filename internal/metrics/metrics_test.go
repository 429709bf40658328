package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementRun(ResultOK)
		m.SetListing("remote", 3)
		m.SetDropped(1)
		m.ObserveRun(time.Now())
	})
}

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementRun(ResultOK)
	m.IncrementRun(ResultOK)
	m.IncrementRun(ResultMissing)
	m.SetListing("in_person", 4)
	m.SetListing("remote", 2)
	m.SetDropped(1)
	m.ObserveRun(time.Now())

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				key += "/" + lp.GetValue()
			}
			switch {
			case metric.GetCounter() != nil:
				values[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[key] = metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				values[key] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, 2.0, values["roster_runs_total/ok"])
	assert.Equal(t, 1.0, values["roster_runs_total/missing_input"])
	assert.Equal(t, 4.0, values["roster_attendees/in_person"])
	assert.Equal(t, 2.0, values["roster_attendees/remote"])
	assert.Equal(t, 1.0, values["roster_dropped_rows"])
	assert.Equal(t, 1.0, values["roster_run_duration_seconds"])
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
