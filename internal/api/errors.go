package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/providers"
	"skyward/opsportal/internal/services"
)

const maxJSONBody = 1 << 20

// handleServiceError maps service and provider errors to HTTP responses
func handleServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	if svcErr, ok := services.AsServiceError(err); ok {
		common.RespondError(w, initTime, err, svcErr.Message, mapErrorCodeToHTTPStatus(svcErr.Code))
		return
	}
	if provErr, ok := providers.AsProviderError(err); ok {
		common.RespondError(w, initTime, err, provErr.Message, mapProviderErrorToHTTPStatus(provErr.Code))
		return
	}

	// Default to internal server error for unknown errors
	common.RespondError(w, initTime, err, "An unexpected error occurred", http.StatusInternalServerError)
}

// mapErrorCodeToHTTPStatus maps service error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(errorCode string) int {
	switch errorCode {
	case constants.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case constants.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case constants.ErrCodeNotFound:
		return http.StatusNotFound
	case constants.ErrCodeConflict, constants.ErrCodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// mapProviderErrorToHTTPStatus maps upstream failures. A missing key is our
// misconfiguration, everything else is the upstream's.
func mapProviderErrorToHTTPStatus(errorCode string) int {
	switch errorCode {
	case constants.ErrCodeAPIKeyMissing:
		return http.StatusInternalServerError
	case constants.ErrCodeSessionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// decodeJSON reads a bounded JSON body into dest
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}
