package entities

import "testing"

func TestPortalHealthSettle(t *testing.T) {
	tests := []struct {
		name       string
		components map[string]ComponentHealth
		want       HealthState
	}{
		{"empty", nil, HealthOK},
		{"optional down", map[string]ComponentHealth{
			"database": {State: HealthOK},
			"cache":    {State: HealthDown, Optional: true},
		}, HealthDegraded},
		{"required down", map[string]ComponentHealth{
			"database": {State: HealthDown},
			"cache":    {State: HealthDown, Optional: true},
		}, HealthDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := PortalHealth{Components: tt.components}
			if got := h.Settle(); got != tt.want {
				t.Errorf("Settle() = %q, want %q", got, tt.want)
			}
			if h.Status != tt.want {
				t.Errorf("Status = %q, want %q", h.Status, tt.want)
			}
		})
	}
}
