package api

import (
	"net/http"
	"time"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
)

// IssueToken handles POST /api/v1/auth/token. The caller is already
// authenticated; the token carries the same pilot and role.
func (h *Handlers) IssueToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		token, err := h.deps.Services.Auth.IssueToken(auth.GetUserClaims(r.Context()))
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Token issued", token)
	}
}
