package providers

import (
	"time"

	"skyward/opsportal/internal/metrics"
)

// observe records one upstream call. m may be nil.
func observe(m *metrics.MetricsRegistry, provider, endpoint string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		if pe, ok := AsProviderError(err); ok {
			outcome = pe.Code
		}
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, endpoint, outcome).Inc()
	m.ProviderRequestDuration.WithLabelValues(provider, endpoint).Observe(time.Since(start).Seconds())
}
