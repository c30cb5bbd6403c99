package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
)

const weatherProviderName = "aviationweather"

// WeatherProvider reads METARs and airport metadata from the aviationweather.gov data API.
// The API needs no key and answers with a bare JSON array.
type WeatherProvider struct {
	BaseURL string
	Client  *http.Client
	Metrics *metrics.MetricsRegistry
}

func NewWeatherProvider(baseURL string, timeout time.Duration, m *metrics.MetricsRegistry) *WeatherProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WeatherProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Metrics: m,
	}
}

// GetMETAR returns the latest METAR for icao, or nil when the station has none
func (p *WeatherProvider) GetMETAR(ctx context.Context, icao string) (*dtos.METAR, error) {
	var reports []dtos.METAR
	if err := p.getArray(ctx, "/metar", icao, &reports); err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

// GetAirport returns airport metadata for icao, or nil when unknown
func (p *WeatherProvider) GetAirport(ctx context.Context, icao string) (*dtos.AirportInfo, error) {
	var airports []dtos.AirportInfo
	if err := p.getArray(ctx, "/airport", icao, &airports); err != nil {
		return nil, err
	}
	if len(airports) == 0 {
		return nil, nil
	}
	return &airports[0], nil
}

func (p *WeatherProvider) getArray(ctx context.Context, endpoint, icao string, dest interface{}) (err error) {
	start := time.Now()
	defer func() { observe(p.Metrics, weatherProviderName, endpoint, start, err) }()

	if icao == "" {
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "ICAO cannot be empty",
		}
	}

	q := url.Values{}
	q.Set("ids", icao)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{
			Code:       constants.ErrCodeNetworkError,
			Message:    "Failed to read response body",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return buildHTTPError(resp.StatusCode, endpoint, string(body))
	}
	// a 2xx with nothing in it means "no data for this station"
	if resp.StatusCode == http.StatusNoContent || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &ProviderError{
			Code:       constants.ErrCodeInvalidDataFormat,
			Message:    "Failed to decode weather response",
			Details:    string(body),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}
	return nil
}
