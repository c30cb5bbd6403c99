package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/ranks"
)

// ListRanks handles GET /api/v1/ranks
func (h *Handlers) ListRanks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondSuccess(w, time.Now(), "Ranks retrieved", ranks.Tiers())
	}
}

// LookupRank handles GET /api/v1/ranks/lookup?hours=
func (h *Handlers) LookupRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		hours, err := strconv.ParseFloat(r.URL.Query().Get("hours"), 64)
		if err != nil || hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
			common.RespondError(w, initTime, err, "hours must be a non-negative number", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Rank resolved", ranks.Progress(hours))
	}
}
