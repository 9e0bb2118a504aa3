package roster

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds Prometheus metrics for roster operations. Metrics are
// registered on a private registry so repeated construction (tests, one
// per session) never collides with the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	studentsTotal     prometheus.Gauge
}

// NewMetrics creates and registers all roster metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_operations_total",
				Help: "Total number of roster operations",
			},
			[]string{"operation", "status"},
		),

		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roster_operation_duration_seconds",
				Help:    "Roster operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		studentsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "roster_students",
				Help: "Current number of students in the roster",
			},
		),
	}
}

// RecordOperation records a completed roster operation.
func (m *Metrics) RecordOperation(operation string, duration time.Duration, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetStudents updates the roster size gauge.
func (m *Metrics) SetStudents(count int) {
	m.studentsTotal.Set(float64(count))
}

// Dump writes all registered metrics to w in Prometheus text format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}
