package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
)

// GetMyStats handles GET /api/v1/pilots/me/stats
func (h *Handlers) GetMyStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		h.respondPilotStats(w, r, initTime, claims.PilotID())
	}
}

// GetPilotStats handles GET /api/v1/admin/pilots/{id}/stats
func (h *Handlers) GetPilotStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.respondPilotStats(w, r, time.Now(), chi.URLParam(r, "id"))
	}
}

func (h *Handlers) respondPilotStats(w http.ResponseWriter, r *http.Request, initTime time.Time, pilotID string) {
	stats, err := h.deps.Services.PilotStats.GetPilotStats(r.Context(), pilotID)
	if err != nil {
		handleServiceError(w, initTime, err)
		return
	}

	common.RespondSuccess(w, initTime, "Pilot stats retrieved successfully", stats)
}
