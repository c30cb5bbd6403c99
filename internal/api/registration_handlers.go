package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/models/dtos"
)

// ApplyForRegistration handles POST /api/v1/registrations (public)
func (h *Handlers) ApplyForRegistration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegistrationReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		registration, err := h.deps.Services.Registrations.Apply(r.Context(), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Application received", registration, http.StatusCreated)
	}
}

func (h *Handlers) ListRegistrations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		registrations, err := h.deps.Services.Registrations.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Registrations retrieved", registrations)
	}
}

// ReviewRegistration handles POST /api/v1/admin/registrations/{id}/review
func (h *Handlers) ReviewRegistration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ReviewReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		registration, err := h.deps.Services.Registrations.Review(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Registration "+registration.Status, registration)
	}
}
