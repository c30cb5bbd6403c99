package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"

	"skyward/opsportal/internal/models/gorm"
)

// MultiplierRepository handles flight_hour_multipliers
type MultiplierRepository struct {
	db *gormlib.DB
}

func NewMultiplierRepository(db *gormlib.DB) *MultiplierRepository {
	return &MultiplierRepository{db: db}
}

func (r *MultiplierRepository) WithTx(tx *gormlib.DB) *MultiplierRepository {
	return &MultiplierRepository{db: tx}
}

func (r *MultiplierRepository) Create(ctx context.Context, m *gorm.FlightHourMultiplier) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Save writes every column, including a cleared max_hours
func (r *MultiplierRepository) Save(ctx context.Context, m *gorm.FlightHourMultiplier) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MultiplierRepository) GetByID(ctx context.Context, id string) (*gorm.FlightHourMultiplier, error) {
	var m gorm.FlightHourMultiplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch multiplier: %w", err)
	}
	return &m, nil
}

// List returns every rule ordered by lower bound
func (r *MultiplierRepository) List(ctx context.Context) ([]gorm.FlightHourMultiplier, error) {
	var rules []gorm.FlightHourMultiplier
	err := r.db.WithContext(ctx).Order("min_hours ASC, name ASC").Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list multipliers: %w", err)
	}
	return rules, nil
}

// ListActive returns active rules, highest lower bound first
func (r *MultiplierRepository) ListActive(ctx context.Context) ([]gorm.FlightHourMultiplier, error) {
	var rules []gorm.FlightHourMultiplier
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("min_hours DESC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active multipliers: %w", err)
	}
	return rules, nil
}

// Delete reports false when no rule had the id
func (r *MultiplierRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gorm.FlightHourMultiplier{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete multiplier: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
