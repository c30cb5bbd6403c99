package entities

import "time"

// HealthState is the state of one portal dependency or of the portal as a whole
type HealthState string

const (
	HealthOK       HealthState = "ok"
	HealthDegraded HealthState = "degraded"
	HealthDown     HealthState = "down"
)

// ComponentHealth is the result of probing a single dependency.
// Optional components (the cache has an in-memory fallback) can only
// degrade the portal, never take it down.
type ComponentHealth struct {
	State     HealthState `json:"status"`
	Detail    string      `json:"details"`
	LatencyMS int64       `json:"latency_ms"`
	Optional  bool        `json:"optional,omitempty"`
}

type PortalHealth struct {
	Status     HealthState                `json:"status"`
	Components map[string]ComponentHealth `json:"services"`
	UpSince    time.Time                  `json:"up_since"`
	Uptime     string                     `json:"uptime"`
}

// Settle derives the overall status from the component results
func (h *PortalHealth) Settle() HealthState {
	h.Status = HealthOK
	for _, c := range h.Components {
		if c.State == HealthOK {
			continue
		}
		if !c.Optional {
			h.Status = HealthDown
			return h.Status
		}
		h.Status = HealthDegraded
	}
	return h.Status
}
