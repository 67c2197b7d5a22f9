package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "keyword_soup"

// Fetch outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// Metrics holds the service collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	fetches      *prometheus.CounterVec
	soupDuration prometheus.Histogram
	suggestions  prometheus.Histogram
	exports      prometheus.Counter
}

// New registers the service collectors plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggest_fetches_total",
			Help:      "Suggestion service queries by outcome",
		}, []string{"outcome"}),
		soupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "soup_duration_seconds",
			Help:      "Wall time of a full alphabet soup run",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}),
		suggestions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "soup_suggestions",
			Help:      "Distinct suggestions returned per alphabet soup run",
			Buckets:   prometheus.LinearBuckets(0, 50, 8),
		}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "csv_exports_total",
			Help:      "CSV exports produced",
		}),
	}

	reg.MustRegister(
		m.fetches,
		m.soupDuration,
		m.suggestions,
		m.exports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveFetch counts one suggestion query.
func (m *Metrics) ObserveFetch(outcome string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Inc()
}

// ObserveSoup records one alphabet soup run.
func (m *Metrics) ObserveSoup(elapsed time.Duration, distinct int) {
	if m == nil {
		return
	}
	m.soupDuration.Observe(elapsed.Seconds())
	m.suggestions.Observe(float64(distinct))
}

// ObserveExport counts one CSV export.
func (m *Metrics) ObserveExport() {
	if m == nil {
		return
	}
	m.exports.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
