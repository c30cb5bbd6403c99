package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the portal
type MetricsRegistry struct {
	Registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Upstream provider Metrics
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	PirepsReviewedTotal   *prometheus.CounterVec
	RoutesImportedTotal   prometheus.Counter
	SnapshotRefreshTotal  *prometheus.CounterVec
	RegistrationsReviewed *prometheus.CounterVec
}

// NewMetricsRegistry builds every metric on a fresh registry so that tests
// and multiple servers in one process never collide on registration.
func NewMetricsRegistry() *MetricsRegistry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &MetricsRegistry{
		Registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opsportal_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opsportal_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_provider_requests_total",
				Help: "Upstream provider calls by provider, endpoint and outcome",
			},
			[]string{"provider", "endpoint", "outcome"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opsportal_provider_request_duration_seconds",
				Help:    "Upstream provider latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"provider", "endpoint"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		PirepsReviewedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_pireps_reviewed_total",
				Help: "PIREPs reviewed by decision",
			},
			[]string{"decision"},
		),
		RoutesImportedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "opsportal_routes_imported_total",
				Help: "Route catalog rows upserted from CSV imports",
			},
		),
		SnapshotRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_snapshot_refresh_total",
				Help: "Background snapshot refreshes by outcome",
			},
			[]string{"outcome"},
		),
		RegistrationsReviewed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsportal_registrations_reviewed_total",
				Help: "Pilot registrations reviewed by decision",
			},
			[]string{"decision"},
		),
	}
}
