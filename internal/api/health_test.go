package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyward/opsportal/internal/models/entities"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheckHandler(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	broken := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		db, cache  Pinger
		wantCode   int
		wantStatus entities.HealthState
	}{
		{"all up", up, up, http.StatusOK, entities.HealthOK},
		{"cache not configured", up, nil, http.StatusOK, entities.HealthOK},
		{"cache down", up, broken, http.StatusOK, entities.HealthDegraded},
		{"database down", broken, up, http.StatusServiceUnavailable, entities.HealthDown},
		{"both down", broken, broken, http.StatusServiceUnavailable, entities.HealthDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthCheckHandler(tt.db, tt.cache, time.Now().Add(-time.Minute))(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var got entities.PortalHealth
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Len(t, got.Components, 2)
			assert.Equal(t, "1m0s", got.Uptime)
		})
	}
}

func TestHealthCheckHandler_ReportsFailureDetail(t *testing.T) {
	broken := pingFunc(func(context.Context) error { return errors.New("dial tcp: i/o timeout") })

	rec := httptest.NewRecorder()
	HealthCheckHandler(broken, nil, time.Now())(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

	var got entities.PortalHealth
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	db := got.Components["database"]
	assert.Equal(t, entities.HealthDown, db.State)
	assert.Equal(t, "dial tcp: i/o timeout", db.Detail)
	assert.False(t, db.Optional)
	assert.True(t, got.Components["cache"].Optional)
}
