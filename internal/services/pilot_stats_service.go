package services

import (
	"context"

	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/models/gorm"
	"skyward/opsportal/internal/ranks"
)

// PilotStatsResponse is the pilot dashboard payload
type PilotStatsResponse struct {
	Pilot      *gorm.Pilot        `json:"pilot"`
	TotalHours float64            `json:"total_hours"`
	Flights    int                `json:"flights"`
	Rank       ranks.Tier         `json:"rank"`
	Progress   ranks.TierProgress `json:"progress"`
}

type PilotStatsService struct {
	pilots *repositories.PilotRepository
}

func NewPilotStatsService(pilots *repositories.PilotRepository) *PilotStatsService {
	return &PilotStatsService{pilots: pilots}
}

// GetPilotStats returns accumulated hours and rank progress. Pilots without
// approved flights report zero hours.
func (s *PilotStatsService) GetPilotStats(ctx context.Context, pilotID string) (*PilotStatsResponse, error) {
	pilot, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, dbError(err)
	}
	if pilot == nil {
		return nil, notFoundError("pilot")
	}

	stats, err := s.pilots.GetStats(ctx, pilotID)
	if err != nil {
		return nil, dbError(err)
	}

	resp := &PilotStatsResponse{Pilot: pilot}
	if stats != nil {
		resp.TotalHours = stats.TotalHours
		resp.Flights = stats.Flights
	}
	resp.Progress = ranks.Progress(resp.TotalHours)
	resp.Rank = resp.Progress.Current
	return resp, nil
}
