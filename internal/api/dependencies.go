package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/config"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/providers"
	"skyward/opsportal/internal/services"
)

type Repositories struct {
	Keys          *repositories.KeysRepo
	Pilots        *repositories.PilotRepository
	Multipliers   *repositories.MultiplierRepository
	Routes        *repositories.RouteRepository
	Aircraft      *repositories.AircraftRepository
	Registrations *repositories.RegistrationRepository
}

type Services struct {
	Proxy         *services.ProxyService
	Weather       *services.WeatherService
	Routes        *services.RouteCatalogService
	Multipliers   *services.MultiplierService
	Pireps        *services.PirepService
	PilotStats    *services.PilotStatsService
	Fleet         *services.FleetService
	Registrations *services.RegistrationService
	Auth          *services.AuthService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Cache    common.CacheInterface
	Metrics  *metrics.MetricsRegistry
	Signer   *auth.TokenSigner
	DB       *sqlx.DB
	UpSince  time.Time
}

// InitDependencies wires repositories, providers and services. signer may be nil
// when TOKEN_SECRET is unset; bearer auth is then disabled.
func InitDependencies(
	cfg *config.Config,
	conn *sqlx.DB,
	orm *gorm.DB,
	cache common.CacheInterface,
	m *metrics.MetricsRegistry,
	signer *auth.TokenSigner,
) *Dependencies {
	repos := &Repositories{
		Keys:          repositories.NewApiKeysRepo(conn),
		Pilots:        repositories.NewPilotRepository(orm),
		Multipliers:   repositories.NewMultiplierRepository(orm),
		Routes:        repositories.NewRouteRepository(orm),
		Aircraft:      repositories.NewAircraftRepository(orm),
		Registrations: repositories.NewRegistrationRepository(orm),
	}

	liveProvider := providers.NewLiveAPIProvider(cfg.LiveAPIBaseURL, cfg.LiveAPIKey, cfg.ProviderTimeout, m)
	weatherProvider := providers.NewWeatherProvider(cfg.WeatherAPIBaseURL, cfg.ProviderTimeout, m)

	svcs := &Services{
		Proxy:         services.NewProxyService(liveProvider, cache, m, cfg.LiveSessionName, cfg.ProxyCacheTTL),
		Weather:       services.NewWeatherService(weatherProvider, cache, m, cfg.WeatherCacheTTL),
		Routes:        services.NewRouteCatalogService(repos.Routes, m),
		Multipliers:   services.NewMultiplierService(repos.Multipliers),
		Pireps:        services.NewPirepService(orm, m),
		PilotStats:    services.NewPilotStatsService(repos.Pilots),
		Fleet:         services.NewFleetService(repos.Aircraft),
		Registrations: services.NewRegistrationService(orm, m),
		Auth:          services.NewAuthService(repos.Keys, signer),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Cache:    cache,
		Metrics:  m,
		Signer:   signer,
		DB:       conn,
		UpSince:  time.Now(),
	}
}
