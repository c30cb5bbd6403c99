package services

import (
	"context"
	"math"
	"strings"
	"time"

	gormlib "gorm.io/gorm"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/models/gorm"
	"skyward/opsportal/internal/ranks"
)

const maxFlightTimeHours = 24

// PirepService files PIREPs and runs the review queue. Approval credits
// multiplied hours to the pilot and recomputes the rank.
type PirepService struct {
	db          *gormlib.DB
	pireps      *repositories.PirepRepository
	pilots      *repositories.PilotRepository
	multipliers *repositories.MultiplierRepository
	fleet       *repositories.AircraftRepository
	metrics     *metrics.MetricsRegistry
	now         func() time.Time
}

func NewPirepService(db *gormlib.DB, m *metrics.MetricsRegistry) *PirepService {
	return &PirepService{
		db:          db,
		pireps:      repositories.NewPirepRepository(db),
		pilots:      repositories.NewPilotRepository(db),
		multipliers: repositories.NewMultiplierRepository(db),
		fleet:       repositories.NewAircraftRepository(db),
		metrics:     m,
		now:         time.Now,
	}
}

// Submit files a pending PIREP for pilotID
func (s *PirepService) Submit(ctx context.Context, pilotID string, req dtos.SubmitPirepReq) (*gorm.Pirep, error) {
	flightNumber := strings.ToUpper(strings.TrimSpace(req.FlightNumber))
	origin := common.NormalizeICAO(req.Origin)
	destination := common.NormalizeICAO(req.Destination)
	registration := strings.ToUpper(strings.TrimSpace(req.AircraftRegistration))

	switch {
	case flightNumber == "":
		return nil, validationError("flight_number is required")
	case !common.IsICAO(origin) || !common.IsICAO(destination):
		return nil, validationError("origin and destination must be four-letter ICAO codes")
	case req.FlightTimeHours <= 0 || req.FlightTimeHours > maxFlightTimeHours:
		return nil, validationError("flight_time_hours must be greater than 0 and at most %d", maxFlightTimeHours)
	}

	pilot, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, dbError(err)
	}
	if pilot == nil || !pilot.IsActive {
		return nil, notFoundError("pilot")
	}

	if registration != "" {
		aircraft, err := s.fleet.GetByRegistration(ctx, registration)
		if err != nil {
			return nil, dbError(err)
		}
		if aircraft == nil {
			return nil, validationError("aircraft %s is not in the fleet", registration)
		}
		if aircraft.Status != constants.AircraftActive {
			return nil, validationError("aircraft %s is %s", registration, aircraft.Status)
		}
	}

	pirep := &gorm.Pirep{
		PilotID:              pilotID,
		FlightNumber:         flightNumber,
		Origin:               origin,
		Destination:          destination,
		AircraftRegistration: registration,
		FlightTimeHours:      round2(req.FlightTimeHours),
		Status:               constants.StatusPending,
		SubmittedAt:          s.now().UTC(),
	}
	if err := s.pireps.Create(ctx, pirep); err != nil {
		return nil, dbError(err)
	}
	return pirep, nil
}

func (s *PirepService) ListMine(ctx context.Context, pilotID string) ([]gorm.Pirep, error) {
	pireps, err := s.pireps.ListByPilot(ctx, pilotID)
	if err != nil {
		return nil, dbError(err)
	}
	return pireps, nil
}

// List returns the PIREPs with status, or all when status is empty
func (s *PirepService) List(ctx context.Context, status string) ([]gorm.Pirep, error) {
	if status != "" && !isReviewStatus(status) {
		return nil, validationError("unknown status %q", status)
	}
	pireps, err := s.pireps.List(ctx, status)
	if err != nil {
		return nil, dbError(err)
	}
	return pireps, nil
}

// Review approves or rejects a pending PIREP
func (s *PirepService) Review(ctx context.Context, id, reviewerID string, req dtos.ReviewReq) (*gorm.Pirep, error) {
	decision := strings.ToLower(strings.TrimSpace(req.Decision))
	if decision != constants.DecisionApprove && decision != constants.DecisionReject {
		return nil, validationError("decision must be %q or %q", constants.DecisionApprove, constants.DecisionReject)
	}

	var reviewed *gorm.Pirep
	err := s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		pireps := s.pireps.WithTx(tx)

		pirep, err := pireps.GetByID(ctx, id)
		if err != nil {
			return dbError(err)
		}
		if pirep == nil {
			return notFoundError("pirep")
		}
		if pirep.Status != constants.StatusPending {
			return &ServiceError{
				Code:    constants.ErrCodeInvalidState,
				Message: "pirep has already been " + pirep.Status,
			}
		}

		now := s.now().UTC()
		// service keys review without a pilot identity
		if reviewerID != "" {
			pirep.ReviewerID = &reviewerID
		}
		pirep.ReviewNote = strings.TrimSpace(req.Note)
		pirep.ReviewedAt = &now

		if decision == constants.DecisionReject {
			pirep.Status = constants.StatusRejected
		} else {
			pirep.Status = constants.StatusApproved
			if err := s.credit(ctx, tx, pirep); err != nil {
				return err
			}
		}

		if err := pireps.Save(ctx, pirep); err != nil {
			return dbError(err)
		}
		reviewed = pirep
		return nil
	})
	if err != nil {
		if _, ok := AsServiceError(err); ok {
			return nil, err
		}
		return nil, dbError(err)
	}

	if s.metrics != nil {
		s.metrics.PirepsReviewedTotal.WithLabelValues(decision).Inc()
	}
	logging.WithComponent("pireps").Infow("PIREP reviewed",
		"pirep_id", reviewed.ID,
		"pilot_id", reviewed.PilotID,
		"decision", decision,
		"reviewer_id", reviewerID,
	)
	return reviewed, nil
}

// credit applies the multiplier to pirep and adds the result to the pilot's stats
func (s *PirepService) credit(ctx context.Context, tx *gormlib.DB, pirep *gorm.Pirep) error {
	multiplier, err := resolveMultiplier(ctx, s.multipliers.WithTx(tx), pirep.FlightTimeHours)
	if err != nil {
		return err
	}
	credited := round2(pirep.FlightTimeHours * multiplier)
	pirep.Multiplier = &multiplier
	pirep.CreditedHours = &credited

	pilots := s.pilots.WithTx(tx)
	stats, err := pilots.GetStatsForUpdate(ctx, pirep.PilotID)
	if err != nil {
		return dbError(err)
	}
	if stats == nil {
		stats = &gorm.PilotStats{PilotID: pirep.PilotID}
	}

	stats.TotalHours = round2(stats.TotalHours + credited)
	stats.Flights++
	stats.RankName = ranks.Lookup(stats.TotalHours).Name
	stats.UpdatedAt = s.now().UTC()

	if err := pilots.SaveStats(ctx, stats); err != nil {
		return dbError(err)
	}
	return nil
}

func isReviewStatus(status string) bool {
	return status == constants.StatusPending || status == constants.StatusApproved || status == constants.StatusRejected
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
