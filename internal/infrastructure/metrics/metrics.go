// Package metrics exposes the backend's Prometheus instruments.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flysnipe"

// Metrics holds the instruments registered on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	searchesTotal     *prometheus.CounterVec
	searchOffers      prometheus.Histogram
	checkoutSessions  *prometheus.CounterVec
	statusQueries     *prometheus.CounterVec
	paymentsCompleted prometheus.Counter
	upgradeOutcomes   *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New creates the instruments and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total offer searches by tier and outcome.",
		}, []string{"tier", "outcome"}),

		searchOffers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "offers_returned",
			Help:      "Number of offers returned per search.",
			Buckets:   []float64{0, 1, 3, 5, 8, 10, 15, 20},
		}),

		checkoutSessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "sessions_created_total",
			Help:      "Total checkout sessions created by package.",
		}, []string{"package"}),

		statusQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "status_queries_total",
			Help:      "Total payment status queries by reported status.",
		}, []string{"status"}),

		paymentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "payments_completed_total",
			Help:      "Total checkout sessions marked paid.",
		}),

		upgradeOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upgrade",
			Name:      "outcomes_total",
			Help:      "Total upgrade confirmations by terminal state.",
		}, []string{"state"}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled by the API.",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration observed at the API layer.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.searchesTotal,
		m.searchOffers,
		m.checkoutSessions,
		m.statusQueries,
		m.paymentsCompleted,
		m.upgradeOutcomes,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSearch counts one search and the number of offers it produced.
func (m *Metrics) RecordSearch(premium bool, offers int, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.searchesTotal.WithLabelValues(tierLabel(premium), outcome).Inc()
	if err == nil {
		m.searchOffers.Observe(float64(offers))
	}
}

// RecordCheckoutSession counts a created checkout session.
func (m *Metrics) RecordCheckoutSession(packageID string) {
	if m == nil {
		return
	}
	m.checkoutSessions.WithLabelValues(packageID).Inc()
}

// RecordStatusQuery counts a payment status answer.
func (m *Metrics) RecordStatusQuery(status string) {
	if m == nil {
		return
	}
	m.statusQueries.WithLabelValues(status).Inc()
}

// RecordPaymentCompleted counts a session marked paid.
func (m *Metrics) RecordPaymentCompleted() {
	if m == nil {
		return
	}
	m.paymentsCompleted.Inc()
}

// RecordUpgradeOutcome counts an upgrade confirmation that reached state.
func (m *Metrics) RecordUpgradeOutcome(state string) {
	if m == nil {
		return
	}
	m.upgradeOutcomes.WithLabelValues(state).Inc()
}

// RecordHTTPRequest records one handled request. route is the registered
// path pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func tierLabel(premium bool) string {
	if premium {
		return "premium"
	}
	return "free"
}
