package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/metrics"
)

const maxConcurrentRefreshes = 4

// Refresher overwrites the cached snapshot of one airport
type Refresher interface {
	Refresh(ctx context.Context, icao string) error
}

// SnapshotWarmer keeps weather snapshots of hub airports warm in the cache
type SnapshotWarmer struct {
	refresher Refresher
	airports  []string
	metrics   *metrics.MetricsRegistry
}

// NewSnapshotWarmer creates a new warmer for airports
func NewSnapshotWarmer(refresher Refresher, airports []string, m *metrics.MetricsRegistry) *SnapshotWarmer {
	return &SnapshotWarmer{
		refresher: refresher,
		airports:  airports,
		metrics:   m,
	}
}

// Start refreshes every interval until ctx is cancelled
func (w *SnapshotWarmer) Start(ctx context.Context, interval time.Duration) {
	log := logging.WithComponent("snapshot_warmer")
	if len(w.airports) == 0 || interval <= 0 {
		log.Infow("No hub airports or interval configured, warmer disabled")
		return
	}
	log.Infow("Starting snapshot warmer", "airports", len(w.airports), "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run immediately on start
	w.RefreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Infow("Shutting down")
			return
		case <-ticker.C:
			w.RefreshAll(ctx)
		}
	}
}

// RefreshAll refreshes every airport with bounded concurrency. A failed airport
// does not stop the others.
func (w *SnapshotWarmer) RefreshAll(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentRefreshes)

	for _, icao := range w.airports {
		if ctx.Err() != nil {
			break
		}
		icao := icao
		g.Go(func() error {
			outcome := "success"
			if err := w.refresher.Refresh(ctx, icao); err != nil {
				outcome = "error"
				logging.WithComponent("snapshot_warmer").Warnw("Snapshot refresh failed", "icao", icao, "error", err.Error())
			}
			if w.metrics != nil {
				w.metrics.SnapshotRefreshTotal.WithLabelValues(outcome).Inc()
			}
			return nil
		})
	}
	g.Wait()
}
