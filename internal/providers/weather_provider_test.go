package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyward/opsportal/internal/constants"
)

func TestWeatherProvider_GetMETAR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/metar", r.URL.Path)
		assert.Equal(t, "KJFK", r.URL.Query().Get("ids"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`[{"icaoId":"KJFK","temp":12.2,"wdir":"VRB","wspd":4,"visib":"10+","rawOb":"KJFK 101251Z VRB04KT 10SM FEW250 12/03 A3004","fltCat":"VFR"}]`))
	}))
	defer server.Close()

	p := NewWeatherProvider(server.URL, time.Second, nil)
	metar, err := p.GetMETAR(context.Background(), "KJFK")
	require.NoError(t, err)
	require.NotNil(t, metar)

	assert.Equal(t, "KJFK", metar.ICAOId)
	assert.Equal(t, "VRB", metar.Wdir)
	assert.Equal(t, "10+", metar.Visib)
	assert.Equal(t, "VFR", metar.FltCat)
	assert.InDelta(t, 12.2, metar.Temp, 0.001)
}

func TestWeatherProvider_NoData(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"no content", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }},
		{"empty array", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`[]`)) }},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			p := NewWeatherProvider(server.URL, time.Second, nil)
			metar, err := p.GetMETAR(context.Background(), "XXXX")
			require.NoError(t, err)
			assert.Nil(t, metar)
		})
	}
}

func TestWeatherProvider_UpstreamFailureWithEmptyBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{"unavailable", http.StatusServiceUnavailable, constants.ErrCodeNetworkError},
		{"bad gateway", http.StatusBadGateway, constants.ErrCodeNetworkError},
		{"not found", http.StatusNotFound, constants.ErrCodeResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			p := NewWeatherProvider(server.URL, time.Second, nil)
			metar, err := p.GetMETAR(context.Background(), "KJFK")
			assert.Nil(t, metar)
			pe, ok := AsProviderError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, pe.Code)
			assert.Equal(t, tt.status, pe.StatusCode)
		})
	}
}

func TestWeatherProvider_GetAirport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/airport", r.URL.Path)
		w.Write([]byte(`[{"icaoId":"EGLL","iataId":"LHR","name":"LONDON/HEATHROW","country":"GB","lat":51.4706,"lon":-0.4619,"elev":25}]`))
	}))
	defer server.Close()

	p := NewWeatherProvider(server.URL, time.Second, nil)
	info, err := p.GetAirport(context.Background(), "EGLL")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "LHR", info.IATAId)
	assert.Equal(t, "GB", info.Country)
}

func TestWeatherProvider_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	p := NewWeatherProvider(server.URL, time.Second, nil)

	_, err := p.GetMETAR(context.Background(), "KJFK")
	pe, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeInvalidDataFormat, pe.Code)

	_, err = p.GetMETAR(context.Background(), "")
	assert.Error(t, err)
}
