package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"

	"skyward/opsportal/internal/models/gorm"
)

// AircraftRepository handles the fleet
type AircraftRepository struct {
	db *gormlib.DB
}

func NewAircraftRepository(db *gormlib.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) Create(ctx context.Context, a *gorm.Aircraft) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AircraftRepository) Save(ctx context.Context, a *gorm.Aircraft) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AircraftRepository) GetByID(ctx context.Context, id string) (*gorm.Aircraft, error) {
	var a gorm.Aircraft
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}
	return &a, nil
}

func (r *AircraftRepository) GetByRegistration(ctx context.Context, registration string) (*gorm.Aircraft, error) {
	var a gorm.Aircraft
	err := r.db.WithContext(ctx).Where("registration = ?", registration).First(&a).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}
	return &a, nil
}

// List returns the fleet, optionally narrowed to one status
func (r *AircraftRepository) List(ctx context.Context, status string) ([]gorm.Aircraft, error) {
	var fleet []gorm.Aircraft
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("registration ASC").Find(&fleet).Error; err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	return fleet, nil
}

func (r *AircraftRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gorm.Aircraft{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete aircraft: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
