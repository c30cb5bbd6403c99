package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/opsportal/internal/models/gorm"
)

// PilotRepository handles pilots and pilot_stats
type PilotRepository struct {
	db *gormlib.DB
}

func NewPilotRepository(db *gormlib.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *PilotRepository) WithTx(tx *gormlib.DB) *PilotRepository {
	return &PilotRepository{db: tx}
}

func (r *PilotRepository) Create(ctx context.Context, pilot *gorm.Pilot) error {
	return r.db.WithContext(ctx).Create(pilot).Error
}

// GetByID returns nil when the pilot does not exist
func (r *PilotRepository) GetByID(ctx context.Context, id string) (*gorm.Pilot, error) {
	var pilot gorm.Pilot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pilot).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}
	return &pilot, nil
}

// GetByCallsign returns nil when no pilot holds the callsign
func (r *PilotRepository) GetByCallsign(ctx context.Context, callsign string) (*gorm.Pilot, error) {
	var pilot gorm.Pilot
	err := r.db.WithContext(ctx).Where("callsign = ?", callsign).First(&pilot).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}
	return &pilot, nil
}

// GetStats returns nil when the pilot has no stats row yet
func (r *PilotRepository) GetStats(ctx context.Context, pilotID string) (*gorm.PilotStats, error) {
	var stats gorm.PilotStats
	err := r.db.WithContext(ctx).Where("pilot_id = ?", pilotID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot stats: %w", err)
	}
	return &stats, nil
}

// GetStatsForUpdate reads the stats row with a row lock on Postgres
func (r *PilotRepository) GetStatsForUpdate(ctx context.Context, pilotID string) (*gorm.PilotStats, error) {
	var stats gorm.PilotStats
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Where("pilot_id = ?", pilotID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock pilot stats: %w", err)
	}
	return &stats, nil
}

// SaveStats inserts or replaces the stats row of a pilot
// ON CONFLICT (pilot_id) DO UPDATE
func (r *PilotRepository) SaveStats(ctx context.Context, stats *gorm.PilotStats) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pilot_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_hours", "flights", "rank_name", "updated_at"}),
		}).
		Create(stats).Error
}
