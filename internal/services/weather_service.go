package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/geo"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
)

// WeatherSource is the subset of the aviation weather client used here
type WeatherSource interface {
	GetMETAR(ctx context.Context, icao string) (*dtos.METAR, error)
	GetAirport(ctx context.Context, icao string) (*dtos.AirportInfo, error)
}

// WeatherService builds cached airport briefings
type WeatherService struct {
	source  WeatherSource
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
	ttl     time.Duration
	now     func() time.Time
}

func NewWeatherService(source WeatherSource, cache common.CacheInterface, m *metrics.MetricsRegistry, ttl time.Duration) *WeatherService {
	return &WeatherService{source: source, cache: cache, metrics: m, ttl: ttl, now: time.Now}
}

// Briefing returns airport metadata and the latest METAR for icao
func (s *WeatherService) Briefing(ctx context.Context, icao string) (*dtos.WeatherBriefing, error) {
	icao = common.NormalizeICAO(icao)
	if !common.IsICAO(icao) {
		return nil, validationError("icao must be a four-letter airport code")
	}

	briefing, hit, err := cached(ctx, s.cache, s.metrics, constants.CachePrefixWeather, icao, s.ttl, func(ctx context.Context) (*dtos.WeatherBriefing, error) {
		return s.fetch(ctx, icao)
	})
	if err != nil {
		return nil, err
	}
	briefing.Cached = hit
	return briefing, nil
}

// Refresh fetches a fresh briefing and overwrites the cached snapshot
func (s *WeatherService) Refresh(ctx context.Context, icao string) error {
	icao = common.NormalizeICAO(icao)
	briefing, err := s.fetch(ctx, icao)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, string(constants.CachePrefixWeather)+icao, briefing, s.ttl)
}

func (s *WeatherService) fetch(ctx context.Context, icao string) (*dtos.WeatherBriefing, error) {
	var (
		metar   *dtos.METAR
		airport *dtos.AirportInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metar, err = s.source.GetMETAR(gctx, icao)
		return err
	})
	g.Go(func() error {
		var err error
		airport, err = s.source.GetAirport(gctx, icao)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// fall back to the embedded table when the provider has no metadata
	if airport == nil {
		if known, ok := geo.Lookup(icao); ok {
			airport = &dtos.AirportInfo{
				ICAOId:  known.ICAO,
				Name:    known.Name,
				Country: known.Country,
				Lat:     known.Lat,
				Lon:     known.Lon,
			}
		}
	}
	if airport == nil && metar == nil {
		return nil, notFoundError("airport " + icao)
	}

	return &dtos.WeatherBriefing{
		ICAO:      icao,
		Airport:   airport,
		METAR:     metar,
		FetchedAt: s.now().UTC(),
	}, nil
}
