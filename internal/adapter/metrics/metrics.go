// Package metrics exposes report counters and timings to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lingvodoc"

// Metrics records cognate report activity.
type Metrics struct {
	reports      *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	perspectives *prometheus.CounterVec
	entries      prometheus.Counter

	gatherer prometheus.Gatherer
}

// New registers the report collectors on a fresh registry together with the
// Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the report collectors on reg.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cognates",
			Name:      "reports_total",
			Help:      "Cognate reports by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cognates",
			Name:      "report_duration_seconds",
			Help:      "Time to build a cognate report.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900, 1800},
		}, []string{"outcome"}),
		perspectives: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cognates",
			Name:      "perspectives_total",
			Help:      "Classified perspectives by result.",
		}, []string{"result"}),
		entries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cognates",
			Name:      "entries_total",
			Help:      "Lexical entries written into reports.",
		}),
		gatherer: gatherer,
	}

	reg.MustRegister(m.reports, m.duration, m.perspectives, m.entries)
	return m
}

// ReportFinished counts a finished report and observes its duration.
func (m *Metrics) ReportFinished(outcome string, elapsed time.Duration) {
	m.reports.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// PerspectiveClassified counts a perspective as emitted or skipped.
func (m *Metrics) PerspectiveClassified(emitted bool) {
	result := "skipped"
	if emitted {
		result = "emitted"
	}
	m.perspectives.WithLabelValues(result).Inc()
}

// EntriesEmitted adds n written entries.
func (m *Metrics) EntriesEmitted(n int) {
	if n > 0 {
		m.entries.Add(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
