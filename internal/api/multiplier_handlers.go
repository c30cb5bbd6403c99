package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/models/dtos"
)

func (h *Handlers) ListMultipliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		rules, err := h.deps.Services.Multipliers.List(r.Context())
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Multipliers retrieved", rules)
	}
}

func (h *Handlers) CreateMultiplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MultiplierReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		rule, err := h.deps.Services.Multipliers.Create(r.Context(), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Multiplier created", rule, http.StatusCreated)
	}
}

func (h *Handlers) UpdateMultiplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MultiplierReq
		if err := decodeJSON(w, r, &req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		rule, err := h.deps.Services.Multipliers.Update(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Multiplier updated", rule)
	}
}

func (h *Handlers) DeleteMultiplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Multipliers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Multiplier deleted", nil)
	}
}
