package api

import (
	"net/http"
	"testing"

	"skyward/opsportal/internal/constants"
)

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{constants.ErrCodeValidationFailed, http.StatusBadRequest},
		{constants.ErrCodeUnauthorized, http.StatusUnauthorized},
		{constants.ErrCodeNotFound, http.StatusNotFound},
		{constants.ErrCodeConflict, http.StatusConflict},
		{constants.ErrCodeInvalidState, http.StatusConflict},
		{constants.ErrCodeDatabase, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := mapErrorCodeToHTTPStatus(tt.code); got != tt.want {
			t.Errorf("mapErrorCodeToHTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestMapProviderErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{constants.ErrCodeAPIKeyMissing, http.StatusInternalServerError},
		{constants.ErrCodeSessionUnavailable, http.StatusServiceUnavailable},
		{constants.ErrCodeUpstreamError, http.StatusBadGateway},
		{constants.ErrCodeNetworkError, http.StatusBadGateway},
		{constants.ErrCodeInvalidAPIKey, http.StatusBadGateway},
		{constants.ErrCodeRateLimited, http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := mapProviderErrorToHTTPStatus(tt.code); got != tt.want {
			t.Errorf("mapProviderErrorToHTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
