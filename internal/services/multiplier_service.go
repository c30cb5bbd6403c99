package services

import (
	"context"
	"strings"

	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/models/gorm"
)

// DefaultMultiplier applies when no active rule covers a flight
const DefaultMultiplier = 1.0

// MultiplierService manages flight-hour multiplier rules
type MultiplierService struct {
	repo *repositories.MultiplierRepository
}

func NewMultiplierService(repo *repositories.MultiplierRepository) *MultiplierService {
	return &MultiplierService{repo: repo}
}

func (s *MultiplierService) List(ctx context.Context) ([]gorm.FlightHourMultiplier, error) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return rules, nil
}

func (s *MultiplierService) Create(ctx context.Context, req dtos.MultiplierReq) (*gorm.FlightHourMultiplier, error) {
	if err := validateMultiplier(req); err != nil {
		return nil, err
	}

	rule := &gorm.FlightHourMultiplier{IsActive: true}
	applyMultiplierReq(rule, req)

	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, dbError(err)
	}
	return rule, nil
}

// Update replaces every field of a rule. An omitted is_active keeps the current flag.
func (s *MultiplierService) Update(ctx context.Context, id string, req dtos.MultiplierReq) (*gorm.FlightHourMultiplier, error) {
	if err := validateMultiplier(req); err != nil {
		return nil, err
	}

	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if rule == nil {
		return nil, notFoundError("multiplier")
	}

	applyMultiplierReq(rule, req)
	if err := s.repo.Save(ctx, rule); err != nil {
		return nil, dbError(err)
	}
	return rule, nil
}

func (s *MultiplierService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return notFoundError("multiplier")
	}
	return nil
}

// Resolve returns the multiplier for a flight of the given duration
func (s *MultiplierService) Resolve(ctx context.Context, hours float64) (float64, error) {
	return resolveMultiplier(ctx, s.repo, hours)
}

func resolveMultiplier(ctx context.Context, repo *repositories.MultiplierRepository, hours float64) (float64, error) {
	rules, err := repo.ListActive(ctx)
	if err != nil {
		return 0, dbError(err)
	}
	// highest lower bound first; the first band containing hours wins
	for _, rule := range rules {
		if rule.Contains(hours) {
			return rule.Multiplier, nil
		}
	}
	return DefaultMultiplier, nil
}

func validateMultiplier(req dtos.MultiplierReq) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return validationError("name is required")
	case req.MinHours < 0:
		return validationError("min_hours must not be negative")
	case req.MaxHours != nil && *req.MaxHours <= req.MinHours:
		return validationError("max_hours must be greater than min_hours")
	case req.Multiplier <= 0:
		return validationError("multiplier must be positive")
	}
	return nil
}

func applyMultiplierReq(rule *gorm.FlightHourMultiplier, req dtos.MultiplierReq) {
	rule.Name = strings.TrimSpace(req.Name)
	rule.MinHours = req.MinHours
	rule.MaxHours = req.MaxHours
	rule.Multiplier = req.Multiplier
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
}
