package services

import (
	"context"
	"regexp"
	"strings"

	gormlib "gorm.io/gorm"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/models/gorm"
	"skyward/opsportal/internal/ranks"
)

var callsignPattern = regexp.MustCompile(`^[A-Z0-9]{3,16}$`)

// RegistrationService takes applications to join and turns approved ones into pilots
type RegistrationService struct {
	db      *gormlib.DB
	regs    *repositories.RegistrationRepository
	pilots  *repositories.PilotRepository
	metrics *metrics.MetricsRegistry
}

func NewRegistrationService(db *gormlib.DB, m *metrics.MetricsRegistry) *RegistrationService {
	return &RegistrationService{
		db:      db,
		regs:    repositories.NewRegistrationRepository(db),
		pilots:  repositories.NewPilotRepository(db),
		metrics: m,
	}
}

// Apply files a pending application. The callsign must be free and not already requested.
func (s *RegistrationService) Apply(ctx context.Context, req dtos.RegistrationReq) (*gorm.PilotRegistration, error) {
	name := strings.TrimSpace(req.Name)
	ifcUsername := strings.TrimSpace(req.IFCUsername)
	callsign := strings.ToUpper(strings.TrimSpace(req.RequestedCallsign))

	switch {
	case name == "":
		return nil, validationError("name is required")
	case ifcUsername == "":
		return nil, validationError("ifc_username is required")
	case !callsignPattern.MatchString(callsign):
		return nil, validationError("requested_callsign must be 3-16 letters or digits")
	}

	if err := s.ensureCallsignFree(ctx, s.pilots, callsign); err != nil {
		return nil, err
	}
	pending, err := s.regs.HasPendingForCallsign(ctx, callsign)
	if err != nil {
		return nil, dbError(err)
	}
	if pending {
		return nil, conflictError("callsign %s has already been requested", callsign)
	}

	reg := &gorm.PilotRegistration{
		Name:              name,
		IFCUsername:       ifcUsername,
		RequestedCallsign: callsign,
		Status:            constants.StatusPending,
	}
	if err := s.regs.Create(ctx, reg); err != nil {
		return nil, dbError(err)
	}
	return reg, nil
}

func (s *RegistrationService) List(ctx context.Context, status string) ([]gorm.PilotRegistration, error) {
	if status != "" && !isReviewStatus(status) {
		return nil, validationError("unknown status %q", status)
	}
	regs, err := s.regs.List(ctx, status)
	if err != nil {
		return nil, dbError(err)
	}
	return regs, nil
}

// Review approves or rejects a pending application. Approval creates the pilot
// and an empty stats row in the same transaction.
func (s *RegistrationService) Review(ctx context.Context, id string, req dtos.ReviewReq) (*gorm.PilotRegistration, error) {
	decision := strings.ToLower(strings.TrimSpace(req.Decision))
	if decision != constants.DecisionApprove && decision != constants.DecisionReject {
		return nil, validationError("decision must be %q or %q", constants.DecisionApprove, constants.DecisionReject)
	}

	var reviewed *gorm.PilotRegistration
	err := s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		regs := s.regs.WithTx(tx)
		pilots := s.pilots.WithTx(tx)

		reg, err := regs.GetByID(ctx, id)
		if err != nil {
			return dbError(err)
		}
		if reg == nil {
			return notFoundError("registration")
		}
		if reg.Status != constants.StatusPending {
			return &ServiceError{
				Code:    constants.ErrCodeInvalidState,
				Message: "registration has already been " + reg.Status,
			}
		}

		reg.ReviewNote = strings.TrimSpace(req.Note)
		if decision == constants.DecisionReject {
			reg.Status = constants.StatusRejected
		} else {
			if err := s.ensureCallsignFree(ctx, pilots, reg.RequestedCallsign); err != nil {
				return err
			}

			pilot := &gorm.Pilot{
				Callsign:    reg.RequestedCallsign,
				Name:        reg.Name,
				IFCUsername: reg.IFCUsername,
				Role:        constants.RolePilot.String(),
				IsActive:    true,
			}
			if err := pilots.Create(ctx, pilot); err != nil {
				return dbError(err)
			}
			if err := pilots.SaveStats(ctx, &gorm.PilotStats{
				PilotID:  pilot.ID,
				RankName: ranks.Lookup(0).Name,
			}); err != nil {
				return dbError(err)
			}

			reg.Status = constants.StatusApproved
			reg.PilotID = &pilot.ID
		}

		if err := regs.Save(ctx, reg); err != nil {
			return dbError(err)
		}
		reviewed = reg
		return nil
	})
	if err != nil {
		if _, ok := AsServiceError(err); ok {
			return nil, err
		}
		return nil, dbError(err)
	}

	if s.metrics != nil {
		s.metrics.RegistrationsReviewed.WithLabelValues(decision).Inc()
	}
	logging.WithComponent("registrations").Infow("Registration reviewed",
		"registration_id", reviewed.ID,
		"callsign", reviewed.RequestedCallsign,
		"decision", decision,
	)
	return reviewed, nil
}

func (s *RegistrationService) ensureCallsignFree(ctx context.Context, pilots *repositories.PilotRepository, callsign string) error {
	existing, err := pilots.GetByCallsign(ctx, callsign)
	if err != nil {
		return dbError(err)
	}
	if existing != nil {
		return conflictError("callsign %s is already taken", callsign)
	}
	return nil
}
