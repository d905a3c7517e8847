package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestJobMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewJobMetrics(reg)

	m.ObserveDuration("status-refresh", 250*time.Millisecond)
	m.IncSuccess("status-refresh")
	m.IncSuccess("status-refresh")
	m.IncFailure("status-refresh")
	m.AddStatusChange("expired")
	m.AddStatusChange("")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.success.WithLabelValues("status-refresh")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.failure.WithLabelValues("status-refresh")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.changed.WithLabelValues("expired")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.changed.WithLabelValues("unknown")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestNilRegistererIsNoop(t *testing.T) {
	var m *JobMetrics
	m.IncSuccess("x")

	m = NewJobMetrics(nil)
	m.IncFailure("x")
	m.ObserveDuration("x", time.Second)
	m.AddStatusChange("warning")

	h := NewHTTPMetrics(nil)
	h.Observe("GET", "/food_items", 200, time.Millisecond)
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/food_items/:id", 404, 5*time.Millisecond)
	m.Observe("GET", "/food_items/:id", 404, 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/food_items/:id", "404")))
}
