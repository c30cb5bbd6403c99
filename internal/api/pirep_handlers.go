package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/auth"
	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/models/dtos"
)

// SubmitPirep handles POST /api/v1/pireps
func (h *Handlers) SubmitPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.SubmitPirepReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		pirep, err := h.deps.Services.Pireps.Submit(r.Context(), claims.PilotID(), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "PIREP submitted", pirep, http.StatusCreated)
	}
}

// ListMyPireps handles GET /api/v1/pireps/mine
func (h *Handlers) ListMyPireps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		pireps, err := h.deps.Services.Pireps.ListMine(r.Context(), claims.PilotID())
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "PIREPs retrieved", pireps)
	}
}

// ListPireps handles GET /api/v1/admin/pireps?status=
func (h *Handlers) ListPireps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		pireps, err := h.deps.Services.Pireps.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "PIREPs retrieved", pireps)
	}
}

// ReviewPirep handles POST /api/v1/admin/pireps/{id}/review
func (h *Handlers) ReviewPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.ReviewReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		pirep, err := h.deps.Services.Pireps.Review(r.Context(), chi.URLParam(r, "id"), claims.PilotID(), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "PIREP "+pirep.Status, pirep)
	}
}
