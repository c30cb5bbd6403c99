package api

import (
	"net/http"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/providers"
	"skyward/opsportal/internal/services"
)

// ProxyAirportStats handles POST /api/proxy/airport-stats
func (h *Handlers) ProxyAirportStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proxy := h.deps.Services.Proxy
		if !proxy.Configured() {
			respondProxyMissingKey(w)
			return
		}

		var req dtos.AirportStatsReq
		if err := decodeJSON(w, r, &req); err != nil {
			respondProxy(w, http.StatusBadRequest, nil, "Invalid request body: "+err.Error())
			return
		}

		data, err := proxy.AirportStats(r.Context(), req.ICAO)
		if err != nil {
			respondProxyError(w, err)
			return
		}
		respondProxy(w, http.StatusOK, data, "")
	}
}

// ProxyUserStats handles POST /api/proxy/user-stats
func (h *Handlers) ProxyUserStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proxy := h.deps.Services.Proxy
		if !proxy.Configured() {
			respondProxyMissingKey(w)
			return
		}

		var req dtos.UserStatsReq
		if err := decodeJSON(w, r, &req); err != nil {
			respondProxy(w, http.StatusBadRequest, nil, "Invalid request body: "+err.Error())
			return
		}

		data, err := proxy.UserStats(r.Context(), req)
		if err != nil {
			respondProxyError(w, err)
			return
		}
		respondProxy(w, http.StatusOK, data, "")
	}
}

func respondProxyMissingKey(w http.ResponseWriter) {
	logging.WithComponent("proxy").Error("Refusing proxy request: IF_API_KEY is not set")
	respondProxy(w, http.StatusInternalServerError, nil, constants.GetErrorMessage(constants.ErrCodeAPIKeyMissing))
}

func respondProxyError(w http.ResponseWriter, err error) {
	if svcErr, ok := services.AsServiceError(err); ok {
		respondProxy(w, mapErrorCodeToHTTPStatus(svcErr.Code), nil, svcErr.Message)
		return
	}
	if provErr, ok := providers.AsProviderError(err); ok {
		status := mapProviderErrorToHTTPStatus(provErr.Code)
		logging.WithComponent("proxy").Warnw("Upstream request failed",
			"code", provErr.Code,
			"upstream_status", provErr.StatusCode,
			"upstream_error_code", provErr.ErrorCode,
			"error", err.Error(),
		)
		respondProxy(w, status, nil, provErr.Message)
		return
	}

	logging.WithComponent("proxy").Errorw("Proxy request failed", "error", err.Error())
	respondProxy(w, http.StatusInternalServerError, nil, "An unexpected error occurred")
}

func respondProxy(w http.ResponseWriter, code int, data any, errMsg string) {
	common.WriteJSON(w, code, dtos.ProxyResponse{
		Success: errMsg == "",
		Data:    data,
		Error:   errMsg,
	})
}
