package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/models/entities"
)

// KeyLookup resolves an X-API-Key header value. A nil key means unknown.
type KeyLookup interface {
	GetStatus(ctx context.Context, key string) (*entities.ApiKey, error)
}

// TokenValidator checks a bearer token
type TokenValidator interface {
	Validate(token string) (*auth.TokenClaims, error)
}

// AuthMiddleware accepts either a bearer token or an X-API-Key and stores the
// resulting claims in the request context. tokens may be nil to disable bearer auth.
func AuthMiddleware(keys KeyLookup, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()
			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				if tokens == nil {
					common.RespondError(w, initTime, nil, "Unauthorized. Bearer tokens are disabled", http.StatusUnauthorized)
					return
				}
				tokenClaims, err := tokens.Validate(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
				if err != nil {
					common.RespondError(w, initTime, nil, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = tokenClaims

			case apiKey != "":
				keyRes, err := keys.GetStatus(r.Context(), apiKey)
				if err != nil {
					logging.Error("API key lookup failed", "error", err, "request_id", auth.GetRequestID(r.Context()))
					common.RespondError(w, initTime, err, "Unable to verify API key", http.StatusInternalServerError)
					return
				}
				if keyRes == nil {
					common.RespondError(w, initTime, nil, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Status {
					common.RespondError(w, initTime, nil, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Role.Valid() {
					common.RespondError(w, initTime, nil, "Unauthorized. API Key has no role", http.StatusUnauthorized)
					return
				}
				claims = &auth.APIKeyClaims{PilotUUID: keyRes.PilotID.String, RoleValue: keyRes.Role}

			default:
				common.RespondError(w, initTime, nil, "Unauthorized. Missing API Key or bearer token", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
