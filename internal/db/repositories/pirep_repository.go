package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/opsportal/internal/models/gorm"
)

// PirepRepository handles pireps
type PirepRepository struct {
	db *gormlib.DB
}

func NewPirepRepository(db *gormlib.DB) *PirepRepository {
	return &PirepRepository{db: db}
}

func (r *PirepRepository) WithTx(tx *gormlib.DB) *PirepRepository {
	return &PirepRepository{db: tx}
}

func (r *PirepRepository) Create(ctx context.Context, p *gorm.Pirep) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PirepRepository) Save(ctx context.Context, p *gorm.Pirep) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// GetByID returns nil when the PIREP does not exist. Inside a Postgres
// transaction the row is locked until commit.
func (r *PirepRepository) GetByID(ctx context.Context, id string) (*gorm.Pirep, error) {
	var p gorm.Pirep
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pirep: %w", err)
	}
	return &p, nil
}

// ListByPilot returns a pilot's PIREPs, newest first
func (r *PirepRepository) ListByPilot(ctx context.Context, pilotID string) ([]gorm.Pirep, error) {
	var pireps []gorm.Pirep
	err := r.db.WithContext(ctx).
		Where("pilot_id = ?", pilotID).
		Order("submitted_at DESC").
		Find(&pireps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pireps: %w", err)
	}
	return pireps, nil
}

// List returns every PIREP with the given status, oldest first so the review queue is FIFO.
// An empty status lists all.
func (r *PirepRepository) List(ctx context.Context, status string) ([]gorm.Pirep, error) {
	var pireps []gorm.Pirep
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("submitted_at ASC").Find(&pireps).Error; err != nil {
		return nil, fmt.Errorf("failed to list pireps: %w", err)
	}
	return pireps, nil
}
