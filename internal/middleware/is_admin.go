package middleware

import (
	"net/http"
	"time"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
)

func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.IsAdmin() {
				common.RespondError(w, time.Now(), nil, "Forbidden. Need admin perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
