package api

import (
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/common"
)

const maxImportSize = 5 << 20

// ImportRoutes handles POST /api/v1/admin/routes/import.
// Accepts a multipart form with a "file" field or a raw text/csv body.
func (h *Handlers) ImportRoutes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

		var src io.Reader = r.Body
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(maxImportSize); err != nil {
				common.RespondError(w, initTime, err, "Invalid multipart form", http.StatusBadRequest)
				return
			}
			file, _, err := r.FormFile("file")
			if err != nil {
				common.RespondError(w, initTime, err, "Multipart field \"file\" is required", http.StatusBadRequest)
				return
			}
			defer file.Close()
			src = file
		}

		result, err := h.deps.Services.Routes.ImportCSV(r.Context(), src)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Routes imported", result)
	}
}

// ListRoutes handles GET /api/v1/routes
func (h *Handlers) ListRoutes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		// pilots only see active routes unless they ask otherwise
		activeOnly := q.Get("all") != "true"

		routes, err := h.deps.Services.Routes.List(r.Context(), q.Get("origin"), q.Get("destination"), activeOnly)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Routes retrieved", routes)
	}
}

// EstimateRoute handles GET /api/v1/routes/estimate
func (h *Handlers) EstimateRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		origin := strings.TrimSpace(q.Get("origin"))
		destination := strings.TrimSpace(q.Get("destination"))
		if origin == "" || destination == "" {
			common.RespondError(w, initTime, nil, "origin and destination are required", http.StatusBadRequest)
			return
		}

		var speed float64
		if raw := q.Get("speed"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				common.RespondError(w, initTime, err, "speed must be a positive number of knots", http.StatusBadRequest)
				return
			}
			speed = v
		}

		est := h.deps.Services.Routes.Estimate(origin, destination, speed)
		if est == nil {
			common.RespondSuccess(w, initTime, "insufficient data", nil)
			return
		}

		common.RespondSuccess(w, initTime, "Route estimated", est)
	}
}

// DeleteRoute handles DELETE /api/v1/admin/routes/{id}
func (h *Handlers) DeleteRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Routes.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Route deleted", nil)
	}
}
