package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
)

const liveProviderName = "live_api"

// LiveAPIProvider is a thin client for the flight-simulation network's public API.
// It makes exactly one request per call: no retry, no batching.
type LiveAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Metrics *metrics.MetricsRegistry
}

// NewLiveAPIProvider creates a Live API client
func NewLiveAPIProvider(baseURL, apiKey string, timeout time.Duration, m *metrics.MetricsRegistry) *LiveAPIProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LiveAPIProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: timeout},
		Metrics: m,
	}
}

// GetProviderType returns the provider type identifier
func (p *LiveAPIProvider) GetProviderType() string {
	return liveProviderName
}

// HasAPIKey reports whether a key is configured
func (p *LiveAPIProvider) HasAPIKey() bool {
	return p.APIKey != ""
}

// GetSessions lists the simulation server sessions currently online
func (p *LiveAPIProvider) GetSessions(ctx context.Context) ([]dtos.Session, error) {
	raw, err := p.doGET(ctx, "/sessions", "/sessions")
	if err != nil {
		return nil, err
	}

	var sessions []dtos.Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode sessions",
			Details: string(raw),
			Err:     err,
		}
	}
	return sessions, nil
}

// GetAirportStatus returns the raw airport status object for icao on a session
func (p *LiveAPIProvider) GetAirportStatus(ctx context.Context, sessionID, icao string) (json.RawMessage, error) {
	if sessionID == "" || icao == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Session ID and ICAO cannot be empty",
		}
	}

	endpoint := fmt.Sprintf("/sessions/%s/airport/%s/status", url.PathEscape(sessionID), url.PathEscape(icao))
	return p.doGET(ctx, endpoint, "/sessions/{id}/airport/{icao}/status")
}

// GetUserStats returns the raw user stats array for the given user IDs or community usernames
func (p *LiveAPIProvider) GetUserStats(ctx context.Context, req dtos.LiveApiUserStatsReq) (json.RawMessage, error) {
	if len(req.UserIDs) == 0 && len(req.DiscourseNames) == 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "At least one user ID or username is required",
		}
	}
	return p.doPost(ctx, "/users", req)
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

func (p *LiveAPIProvider) doGET(ctx context.Context, endpoint, label string) (raw json.RawMessage, err error) {
	start := time.Now()
	defer func() { observe(p.Metrics, liveProviderName, label, start, err) }()

	if !p.HasAPIKey() {
		return nil, &ProviderError{
			Code:    constants.ErrCodeAPIKeyMissing,
			Message: "IF_API_KEY environment variable is not set",
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+endpoint, nil)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	return p.execute(req, endpoint)
}

func (p *LiveAPIProvider) doPost(ctx context.Context, endpoint string, payload interface{}) (raw json.RawMessage, err error) {
	start := time.Now()
	defer func() { observe(p.Metrics, liveProviderName, endpoint, start, err) }()

	if !p.HasAPIKey() {
		return nil, &ProviderError{
			Code:    constants.ErrCodeAPIKeyMissing,
			Message: "IF_API_KEY environment variable is not set",
		}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to marshal request body",
			Err:     err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	return p.execute(req, endpoint)
}

// execute sends req and unwraps the {errorCode, result} envelope
func (p *LiveAPIProvider) execute(req *http.Request, endpoint string) (json.RawMessage, error) {
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{
			Code:       constants.ErrCodeNetworkError,
			Message:    "Failed to read response body",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}

	var envelope dtos.LiveEnvelope
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return nil, &ProviderError{
			Code:       constants.ErrCodeInvalidDataFormat,
			Message:    "Failed to decode response",
			Details:    string(bodyBytes),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if envelope.ErrorCode != 0 {
		return nil, &ProviderError{
			Code:       constants.ErrCodeUpstreamError,
			Message:    fmt.Sprintf("live-api returned errorCode %d", envelope.ErrorCode),
			StatusCode: resp.StatusCode,
			ErrorCode:  envelope.ErrorCode,
		}
	}

	return envelope.Result, nil
}
