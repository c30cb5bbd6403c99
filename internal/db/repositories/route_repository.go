package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/opsportal/internal/models/gorm"
)

// RouteFilter narrows List. Empty fields match everything.
type RouteFilter struct {
	Origin      string
	Destination string
	ActiveOnly  bool
}

// RouteRepository handles the route catalog
type RouteRepository struct {
	db *gormlib.DB
}

func NewRouteRepository(db *gormlib.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) WithTx(tx *gormlib.DB) *RouteRepository {
	return &RouteRepository{db: tx}
}

// Upsert inserts a route or replaces the one with the same flight number
// ON CONFLICT (flight_number) DO UPDATE
func (r *RouteRepository) Upsert(ctx context.Context, route *gorm.Route) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "flight_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"origin", "destination", "aircraft_type", "distance_nm",
				"block_time_hours", "is_active", "updated_at",
			}),
		}).
		Create(route).Error
}

func (r *RouteRepository) GetByFlightNumber(ctx context.Context, flightNumber string) (*gorm.Route, error) {
	var route gorm.Route
	err := r.db.WithContext(ctx).Where("flight_number = ?", flightNumber).First(&route).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}
	return &route, nil
}

func (r *RouteRepository) List(ctx context.Context, filter RouteFilter) ([]gorm.Route, error) {
	var routes []gorm.Route

	q := r.db.WithContext(ctx)
	if filter.Origin != "" {
		q = q.Where("origin = ?", filter.Origin)
	}
	if filter.Destination != "" {
		q = q.Where("destination = ?", filter.Destination)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	if err := q.Order("flight_number ASC").Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// Delete reports false when no route had the id
func (r *RouteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gorm.Route{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete route: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
