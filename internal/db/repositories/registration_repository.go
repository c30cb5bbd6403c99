package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/models/gorm"
)

// RegistrationRepository handles pilot_registrations
type RegistrationRepository struct {
	db *gormlib.DB
}

func NewRegistrationRepository(db *gormlib.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) WithTx(tx *gormlib.DB) *RegistrationRepository {
	return &RegistrationRepository{db: tx}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *gorm.PilotRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistrationRepository) Save(ctx context.Context, reg *gorm.PilotRegistration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*gorm.PilotRegistration, error) {
	var reg gorm.PilotRegistration
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reg).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}
	return &reg, nil
}

// HasPendingForCallsign reports whether an unreviewed application already asks for callsign
func (r *RegistrationRepository) HasPendingForCallsign(ctx context.Context, callsign string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&gorm.PilotRegistration{}).
		Where("requested_callsign = ? AND status = ?", callsign, constants.StatusPending).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to count registrations: %w", err)
	}
	return n > 0, nil
}

func (r *RegistrationRepository) List(ctx context.Context, status string) ([]gorm.PilotRegistration, error) {
	var regs []gorm.PilotRegistration
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at ASC").Find(&regs).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
}
