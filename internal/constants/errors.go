package constants

// Service error codes
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInvalidState     = "INVALID_STATE"
	ErrCodeDatabase         = "DATABASE_ERROR"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
)

// Provider error codes
const (
	ErrCodeInvalidAPIKey      = "INVALID_API_KEY"
	ErrCodeAPIKeyMissing      = "API_KEY_MISSING"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeNetworkError       = "NETWORK_ERROR"
	ErrCodeInvalidDataFormat  = "INVALID_DATA_FORMAT"
	ErrCodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	ErrCodeUpstreamError      = "UPSTREAM_ERROR"
	ErrCodeSessionUnavailable = "SESSION_UNAVAILABLE"
)

var errorMessages = map[string]string{
	ErrCodeNotFound:         "The requested record does not exist",
	ErrCodeValidationFailed: "The request failed validation",
	ErrCodeConflict:         "The record conflicts with an existing one",
	ErrCodeInvalidState:     "The record is not in a state that allows this action",
	ErrCodeDatabase:         "A database error occurred",
	ErrCodeUnauthorized:     "Authentication required",

	ErrCodeInvalidAPIKey:      "The upstream API rejected the configured API key",
	ErrCodeAPIKeyMissing:      "The upstream API key is not configured",
	ErrCodeRateLimited:        "Rate limit exceeded. Please try again later",
	ErrCodeNetworkError:       "Unable to reach the upstream API",
	ErrCodeInvalidDataFormat:  "The data format is invalid",
	ErrCodeResourceNotFound:   "The upstream resource was not found",
	ErrCodeUpstreamError:      "The upstream API returned an error",
	ErrCodeSessionUnavailable: "The configured simulation server session is not online",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
