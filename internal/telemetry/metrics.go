package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the console's Prometheus instruments. Each Metrics
// value owns its registry so tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	PollTicks          prometheus.Counter
	PollPromotions     prometheus.Counter
	NotificationsShown *prometheus.CounterVec
	RedirectsEmitted   prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all console metrics.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.PollTicks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchdash_credential_poll_ticks_total",
		Help: "Total credential revalidation poll ticks",
	})

	m.PollPromotions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchdash_credential_promotions_total",
		Help: "Total sessions promoted from the durable credential store",
	})

	m.NotificationsShown = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchdash_notifications_shown_total",
			Help: "Total notifications shown, by status",
		},
		[]string{"status"},
	)

	m.RedirectsEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchdash_redirects_emitted_total",
		Help: "Total one-shot navigations emitted",
	})

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchdash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "benchdash_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.registry.MustRegister(
		m.PollTicks,
		m.PollPromotions,
		m.NotificationsShown,
		m.RedirectsEmitted,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Handler exposes the metrics registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
