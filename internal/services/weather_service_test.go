package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
)

type fakeWeather struct {
	metar   *dtos.METAR
	airport *dtos.AirportInfo
	err     error
	calls   int32
}

func (f *fakeWeather) GetMETAR(ctx context.Context, icao string) (*dtos.METAR, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.metar, f.err
}

func (f *fakeWeather) GetAirport(ctx context.Context, icao string) (*dtos.AirportInfo, error) {
	return f.airport, f.err
}

func TestWeatherService_BriefingIsCached(t *testing.T) {
	source := &fakeWeather{
		metar:   &dtos.METAR{ICAOId: "KJFK", RawOb: "KJFK 101251Z 31008KT 10SM"},
		airport: &dtos.AirportInfo{ICAOId: "KJFK", Name: "NEW YORK/JOHN F KENNEDY INTL"},
	}
	m := metrics.NewMetricsRegistry()
	svc := NewWeatherService(source, common.NewCacheService(time.Minute, time.Minute), m, time.Minute)

	first, err := svc.Briefing(context.Background(), "kjfk")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "KJFK", first.ICAO)
	require.NotNil(t, first.METAR)

	second, err := svc.Briefing(context.Background(), "KJFK")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.METAR.RawOb, second.METAR.RawOb)
	assert.EqualValues(t, 1, atomic.LoadInt32(&source.calls))

	prefix := string(constants.CachePrefixWeather)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues(prefix)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues(prefix)))
}

func TestWeatherService_FallsBackToEmbeddedTable(t *testing.T) {
	source := &fakeWeather{}
	svc := NewWeatherService(source, common.NewCacheService(time.Minute, time.Minute), nil, time.Minute)

	briefing, err := svc.Briefing(context.Background(), "EGLL")
	require.NoError(t, err)
	require.NotNil(t, briefing.Airport)
	assert.Equal(t, "EGLL", briefing.Airport.ICAOId)
	assert.Nil(t, briefing.METAR)
}

func TestWeatherService_UnknownAirport(t *testing.T) {
	svc := NewWeatherService(&fakeWeather{}, common.NewCacheService(time.Minute, time.Minute), nil, time.Minute)

	_, err := svc.Briefing(context.Background(), "ZZZZ")
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeNotFound, se.Code)

	_, err = svc.Briefing(context.Background(), "ZZ")
	se, ok = AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeValidationFailed, se.Code)
}

func TestWeatherService_RefreshOverwritesSnapshot(t *testing.T) {
	source := &fakeWeather{metar: &dtos.METAR{ICAOId: "KLAX", RawOb: "old"}}
	cache := common.NewCacheService(time.Minute, time.Minute)
	svc := NewWeatherService(source, cache, nil, time.Minute)

	_, err := svc.Briefing(context.Background(), "KLAX")
	require.NoError(t, err)

	source.metar = &dtos.METAR{ICAOId: "KLAX", RawOb: "new"}
	require.NoError(t, svc.Refresh(context.Background(), "KLAX"))

	briefing, err := svc.Briefing(context.Background(), "KLAX")
	require.NoError(t, err)
	assert.True(t, briefing.Cached)
	assert.Equal(t, "new", briefing.METAR.RawOb)

	source.err = errors.New("down")
	assert.Error(t, svc.Refresh(context.Background(), "KLAX"))
}
