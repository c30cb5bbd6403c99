package services

import (
	"context"
	"strings"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/models/gorm"
)

type FleetService struct {
	repo *repositories.AircraftRepository
}

func NewFleetService(repo *repositories.AircraftRepository) *FleetService {
	return &FleetService{repo: repo}
}

// List returns the fleet, optionally narrowed to one status
func (s *FleetService) List(ctx context.Context, status string) ([]gorm.Aircraft, error) {
	if status != "" && !isAircraftStatus(status) {
		return nil, validationError("unknown status %q", status)
	}
	fleet, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, dbError(err)
	}
	return fleet, nil
}

func (s *FleetService) Create(ctx context.Context, req dtos.AircraftReq) (*gorm.Aircraft, error) {
	req, err := normalizeAircraftReq(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByRegistration(ctx, req.Registration)
	if err != nil {
		return nil, dbError(err)
	}
	if existing != nil {
		return nil, conflictError("aircraft %s already exists", req.Registration)
	}

	aircraft := &gorm.Aircraft{}
	applyAircraftReq(aircraft, req)
	if err := s.repo.Create(ctx, aircraft); err != nil {
		return nil, dbError(err)
	}
	return aircraft, nil
}

func (s *FleetService) Update(ctx context.Context, id string, req dtos.AircraftReq) (*gorm.Aircraft, error) {
	req, err := normalizeAircraftReq(req)
	if err != nil {
		return nil, err
	}

	aircraft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if aircraft == nil {
		return nil, notFoundError("aircraft")
	}

	if req.Registration != aircraft.Registration {
		other, err := s.repo.GetByRegistration(ctx, req.Registration)
		if err != nil {
			return nil, dbError(err)
		}
		if other != nil {
			return nil, conflictError("aircraft %s already exists", req.Registration)
		}
	}

	applyAircraftReq(aircraft, req)
	if err := s.repo.Save(ctx, aircraft); err != nil {
		return nil, dbError(err)
	}
	return aircraft, nil
}

func (s *FleetService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return notFoundError("aircraft")
	}
	return nil
}

func normalizeAircraftReq(req dtos.AircraftReq) (dtos.AircraftReq, error) {
	req.Registration = strings.ToUpper(strings.TrimSpace(req.Registration))
	req.TypeCode = strings.ToUpper(strings.TrimSpace(req.TypeCode))
	req.Name = strings.TrimSpace(req.Name)
	req.HomeBase = common.NormalizeICAO(req.HomeBase)
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Status == "" {
		req.Status = constants.AircraftActive
	}

	switch {
	case req.Registration == "":
		return req, validationError("registration is required")
	case req.TypeCode == "":
		return req, validationError("type_code is required")
	case req.HomeBase != "" && !common.IsICAO(req.HomeBase):
		return req, validationError("home_base must be a four-letter ICAO code")
	case !isAircraftStatus(req.Status):
		return req, validationError("status must be active, maintenance or retired")
	}
	return req, nil
}

func applyAircraftReq(a *gorm.Aircraft, req dtos.AircraftReq) {
	a.Registration = req.Registration
	a.TypeCode = req.TypeCode
	a.Name = req.Name
	a.HomeBase = req.HomeBase
	a.Status = req.Status
}

func isAircraftStatus(status string) bool {
	switch status {
	case constants.AircraftActive, constants.AircraftMaintenance, constants.AircraftRetired:
		return true
	}
	return false
}
