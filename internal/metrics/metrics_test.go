package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegistry_Isolated(t *testing.T) {
	a := NewMetricsRegistry()
	b := NewMetricsRegistry()

	a.RoutesImportedTotal.Add(3)
	b.RoutesImportedTotal.Inc()

	if got := testutil.ToFloat64(a.RoutesImportedTotal); got != 3 {
		t.Errorf("Expected 3 routes on first registry, got %v", got)
	}
	if got := testutil.ToFloat64(b.RoutesImportedTotal); got != 1 {
		t.Errorf("Expected 1 route on second registry, got %v", got)
	}
}

func TestCacheCounters(t *testing.T) {
	m := NewMetricsRegistry()
	m.CacheHitsTotal.WithLabelValues("WX_").Inc()
	m.CacheMissesTotal.WithLabelValues("WX_").Inc()
	m.CacheMissesTotal.WithLabelValues("WX_").Inc()

	if got := testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues("WX_")); got != 2 {
		t.Errorf("Expected 2 misses, got %v", got)
	}
}
