package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/models/dtos"
)

// ListActiveFleet handles GET /api/v1/fleet
func (h *Handlers) ListActiveFleet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		aircraft, err := h.deps.Services.Fleet.List(r.Context(), constants.AircraftActive)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fleet retrieved", aircraft)
	}
}

// ListFleet handles GET /api/v1/admin/fleet?status=
func (h *Handlers) ListFleet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		aircraft, err := h.deps.Services.Fleet.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Fleet retrieved", aircraft)
	}
}

func (h *Handlers) CreateAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AircraftReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		aircraft, err := h.deps.Services.Fleet.Create(r.Context(), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft added", aircraft, http.StatusCreated)
	}
}

func (h *Handlers) UpdateAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AircraftReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		aircraft, err := h.deps.Services.Fleet.Update(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft updated", aircraft)
	}
}

func (h *Handlers) DeleteAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Fleet.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft deleted", nil)
	}
}
