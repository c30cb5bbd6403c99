package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/common"
)

// GetWeather handles GET /api/v1/weather/{icao}
func (h *Handlers) GetWeather() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		briefing, err := h.deps.Services.Weather.Briefing(r.Context(), chi.URLParam(r, "icao"))
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Weather briefing retrieved", briefing)
	}
}
