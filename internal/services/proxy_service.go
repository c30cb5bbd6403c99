package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/providers"
)

const sessionCacheTTL = 10 * time.Minute

// LiveDataSource is the subset of the Live API client used by the proxy
type LiveDataSource interface {
	HasAPIKey() bool
	GetSessions(ctx context.Context) ([]dtos.Session, error)
	GetAirportStatus(ctx context.Context, sessionID, icao string) (json.RawMessage, error)
	GetUserStats(ctx context.Context, req dtos.LiveApiUserStatsReq) (json.RawMessage, error)
}

// ProxyService forwards airport and user statistics lookups to the simulation network.
// Successful payloads are kept as read-only snapshots for the proxy TTL.
type ProxyService struct {
	live        LiveDataSource
	cache       common.CacheInterface
	metrics     *metrics.MetricsRegistry
	sessionName string
	ttl         time.Duration
}

func NewProxyService(live LiveDataSource, cache common.CacheInterface, m *metrics.MetricsRegistry, sessionName string, ttl time.Duration) *ProxyService {
	return &ProxyService{
		live:        live,
		cache:       cache,
		metrics:     m,
		sessionName: sessionName,
		ttl:         ttl,
	}
}

// Configured reports whether an upstream API key is present
func (s *ProxyService) Configured() bool {
	return s.live.HasAPIKey()
}

// AirportStats returns the airport status object of icao on the configured session
func (s *ProxyService) AirportStats(ctx context.Context, icao string) (json.RawMessage, error) {
	if err := s.requireKey(); err != nil {
		return nil, err
	}

	icao = common.NormalizeICAO(icao)
	if icao == "" {
		return nil, validationError("icao is required")
	}
	if !common.IsICAO(icao) {
		return nil, validationError("icao must be a four-letter airport code")
	}

	session, err := s.resolveSession(ctx)
	if err != nil {
		return nil, err
	}

	raw, _, err := cached(ctx, s.cache, s.metrics, constants.CachePrefixAirportStats, session.ID+":"+icao, s.ttl,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.live.GetAirportStatus(ctx, session.ID, icao)
		})
	return raw, err
}

// UserStats returns the stats array for one user, looked up by community username or user id
func (s *ProxyService) UserStats(ctx context.Context, req dtos.UserStatsReq) (json.RawMessage, error) {
	if err := s.requireKey(); err != nil {
		return nil, err
	}

	var (
		upstream dtos.LiveApiUserStatsReq
		cacheID  string
	)
	username := strings.TrimSpace(req.Username)
	userID := strings.TrimSpace(req.UserID)
	switch {
	case userID != "":
		upstream.UserIDs = []string{userID}
		cacheID = "id:" + strings.ToLower(userID)
	case username != "":
		upstream.DiscourseNames = []string{username}
		cacheID = "name:" + strings.ToLower(username)
	default:
		return nil, validationError("username or userId is required")
	}

	raw, _, err := cached(ctx, s.cache, s.metrics, constants.CachePrefixUserStats, cacheID, s.ttl,
		func(ctx context.Context) (json.RawMessage, error) {
			raw, err := s.live.GetUserStats(ctx, upstream)
			if err != nil {
				return nil, err
			}
			if isEmptyResult(raw) {
				return nil, notFoundError("user")
			}
			return raw, nil
		})
	return raw, err
}

func (s *ProxyService) requireKey() error {
	if s.live.HasAPIKey() {
		return nil
	}
	return &providers.ProviderError{
		Code:    constants.ErrCodeAPIKeyMissing,
		Message: constants.GetErrorMessage(constants.ErrCodeAPIKeyMissing),
	}
}

// resolveSession finds the configured session by name. An exact match wins over a partial one,
// so "Expert" selects "Expert" before "Expert Server".
func (s *ProxyService) resolveSession(ctx context.Context) (*dtos.Session, error) {
	sessions, _, err := cached(ctx, s.cache, s.metrics, constants.CachePrefixLiveSession, "all", sessionCacheTTL,
		s.live.GetSessions)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(s.sessionName)
	var partial *dtos.Session
	for i := range sessions {
		name := strings.ToLower(sessions[i].Name)
		if name == want {
			return &sessions[i], nil
		}
		if partial == nil && strings.Contains(name, want) {
			partial = &sessions[i]
		}
	}
	if partial != nil {
		return partial, nil
	}

	logging.WithComponent("proxy").Warnw("Configured session not online", "session", s.sessionName, "online", len(sessions))
	return nil, &providers.ProviderError{
		Code:    constants.ErrCodeSessionUnavailable,
		Message: constants.GetErrorMessage(constants.ErrCodeSessionUnavailable),
		Details: s.sessionName,
	}
}

func isEmptyResult(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null" || trimmed == "[]"
}
