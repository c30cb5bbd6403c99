package middleware

import (
	"net/http"
	"time"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
)

// IsPilotMiddleware requires claims bound to a pilot. Admin keys that are not
// bound to a pilot cannot use pilot endpoints.
func IsPilotMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.PilotID() == "" || !claims.Role().Valid() {
				common.RespondError(w, time.Now(), nil, "Forbidden. Need a pilot account", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
