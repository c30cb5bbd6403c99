package api

import (
	"context"
	"net/http"
	"time"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/models/entities"
)

// Pinger is anything the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles GET /healthCheck. A failing database answers
// 503; a failing cache only marks the portal degraded.
func HealthCheckHandler(db Pinger, cache Pinger, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		health := entities.PortalHealth{
			Components: map[string]entities.ComponentHealth{
				"database": probe(ctx, db, "Database connected", false),
				"cache":    probe(ctx, cache, "Cache reachable", true),
			},
			UpSince: upSince,
			Uptime:  time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if health.Settle() == entities.HealthDown {
			code = http.StatusServiceUnavailable
		}
		common.WriteJSON(w, code, health)
	}
}

func probe(ctx context.Context, p Pinger, okDetail string, optional bool) entities.ComponentHealth {
	if p == nil {
		return entities.ComponentHealth{State: entities.HealthOK, Detail: "not configured", Optional: optional}
	}
	start := time.Now()
	err := p.Ping(ctx)
	c := entities.ComponentHealth{
		State:     entities.HealthOK,
		Detail:    okDetail,
		LatencyMS: time.Since(start).Milliseconds(),
		Optional:  optional,
	}
	if err != nil {
		c.State = entities.HealthDown
		c.Detail = err.Error()
	}
	return c
}
