package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"skyward/opsportal/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRefresher struct {
	mu       sync.Mutex
	seen     map[string]int
	fail     map[string]bool
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func (f *fakeRefresher) Refresh(ctx context.Context, icao string) error {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen == nil {
		f.seen = map[string]int{}
	}
	f.seen[icao]++
	if f.fail[icao] {
		return errors.New("upstream down")
	}
	return nil
}

func (f *fakeRefresher) count(icao string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[icao]
}

func TestRefreshAll_BoundedAndCounted(t *testing.T) {
	airports := []string{"KJFK", "KLAX", "EGLL", "EDDF", "LFPG", "RJTT", "YSSY", "OMDB"}
	f := &fakeRefresher{fail: map[string]bool{"EGLL": true}, delay: 10 * time.Millisecond}
	m := metrics.NewMetricsRegistry()

	NewSnapshotWarmer(f, airports, m).RefreshAll(context.Background())

	for _, icao := range airports {
		assert.Equal(t, 1, f.count(icao), icao)
	}
	assert.LessOrEqual(t, f.peak.Load(), int32(maxConcurrentRefreshes))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.SnapshotRefreshTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotRefreshTotal.WithLabelValues("error")))
}

func TestStart_StopsOnCancel(t *testing.T) {
	f := &fakeRefresher{}
	w := NewSnapshotWarmer(f, []string{"KJFK"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return f.count("KJFK") >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}

func TestStart_NoAirports(t *testing.T) {
	w := NewSnapshotWarmer(&fakeRefresher{}, nil, nil)

	done := make(chan struct{})
	go func() {
		w.Start(context.Background(), time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer without airports should return immediately")
	}
}
