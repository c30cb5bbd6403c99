package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"skyward/opsportal/internal/api"
	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/config"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/middleware"
	"skyward/opsportal/internal/models/dtos"
)

// RegisterProxyRoutes registers the public simulation-network proxy, rate limited per client IP
func RegisterProxyRoutes(r chi.Router, cfg *config.Config, handlers *api.Handlers) {
	limiter := middleware.NewIPRateLimiter(cfg.ProxyRatePerSecond, cfg.ProxyRateBurst)
	limiter.OnLimit = func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusTooManyRequests, dtos.ProxyResponse{
			Error: constants.GetErrorMessage(constants.ErrCodeRateLimited),
		})
	}

	r.Route("/api/proxy", func(proxy chi.Router) {
		proxy.Use(limiter.Middleware)
		proxy.Post("/airport-stats", handlers.ProxyAirportStats())
		proxy.Post("/user-stats", handlers.ProxyUserStats())
	})
}

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {
	// a nil *TokenSigner must not become a non-nil interface
	var tokens middleware.TokenValidator
	if deps.Signer != nil {
		tokens = deps.Signer
	}

	r.Route("/api/v1", func(v1 chi.Router) {
		// Public
		v1.Post("/registrations", handlers.ApplyForRegistration())
		v1.Get("/ranks", handlers.ListRanks())
		v1.Get("/ranks/lookup", handlers.LookupRank())

		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Repo.Keys, tokens))
			authed.Post("/auth/token", handlers.IssueToken())

			authed.Group(func(pilot chi.Router) {
				pilot.Use(middleware.IsPilotMiddleware())

				pilot.Get("/weather/{icao}", handlers.GetWeather())
				pilot.Get("/routes", handlers.ListRoutes())
				pilot.Get("/routes/estimate", handlers.EstimateRoute())
				pilot.Get("/fleet", handlers.ListActiveFleet())
				pilot.Get("/pilots/me/stats", handlers.GetMyStats())
				pilot.Post("/pireps", handlers.SubmitPirep())
				pilot.Get("/pireps/mine", handlers.ListMyPireps())
			})

			authed.Route("/admin", func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Post("/routes/import", handlers.ImportRoutes())
				admin.Delete("/routes/{id}", handlers.DeleteRoute())

				admin.Get("/multipliers", handlers.ListMultipliers())
				admin.Post("/multipliers", handlers.CreateMultiplier())
				admin.Put("/multipliers/{id}", handlers.UpdateMultiplier())
				admin.Delete("/multipliers/{id}", handlers.DeleteMultiplier())

				admin.Get("/pireps", handlers.ListPireps())
				admin.Post("/pireps/{id}/review", handlers.ReviewPirep())

				admin.Get("/pilots/{id}/stats", handlers.GetPilotStats())

				admin.Get("/fleet", handlers.ListFleet())
				admin.Post("/fleet", handlers.CreateAircraft())
				admin.Put("/fleet/{id}", handlers.UpdateAircraft())
				admin.Delete("/fleet/{id}", handlers.DeleteAircraft())

				admin.Get("/registrations", handlers.ListRegistrations())
				admin.Post("/registrations/{id}/review", handlers.ReviewRegistration())
			})
		})
	})
}
