package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"skyward/opsportal/internal/common"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/geo"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/models/gorm"
)

var requiredRouteColumns = []string{"flight_number", "origin", "destination"}

// RouteCatalogService manages the route catalog and its CSV import
type RouteCatalogService struct {
	repo    *repositories.RouteRepository
	metrics *metrics.MetricsRegistry
}

func NewRouteCatalogService(repo *repositories.RouteRepository, m *metrics.MetricsRegistry) *RouteCatalogService {
	return &RouteCatalogService{repo: repo, metrics: m}
}

// ImportCSV upserts every valid row of a CSV document with a header row.
// Invalid rows are skipped and reported; only a broken header or an unreadable
// document fails the whole import.
func (s *RouteCatalogService) ImportCSV(ctx context.Context, r io.Reader) (*dtos.RouteImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, validationError("CSV is empty")
		}
		return nil, validationError("unreadable CSV header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[key] = i
	}
	for _, required := range requiredRouteColumns {
		if _, ok := columns[required]; !ok {
			return nil, validationError("CSV header is missing column %q", required)
		}
	}

	result := &dtos.RouteImportResult{Errors: []dtos.ImportRowError{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, validationError("unreadable CSV: %v", err)
			}
			result.Skipped++
			result.Errors = append(result.Errors, dtos.ImportRowError{Line: parseErr.StartLine, Message: parseErr.Err.Error()})
			continue
		}
		line, _ := reader.FieldPos(0)

		route, rowErr := parseRouteRecord(record, columns)
		if rowErr != "" {
			result.Skipped++
			result.Errors = append(result.Errors, dtos.ImportRowError{Line: line, Message: rowErr})
			continue
		}

		if err := s.repo.Upsert(ctx, route); err != nil {
			return nil, dbError(fmt.Errorf("line %d: %w", line, err))
		}
		result.Imported++
	}

	if s.metrics != nil {
		s.metrics.RoutesImportedTotal.Add(float64(result.Imported))
	}
	logging.WithComponent("routes").Infow("Route CSV imported",
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return result, nil
}

func parseRouteRecord(record []string, columns map[string]int) (*gorm.Route, string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	flightNumber := strings.ToUpper(field("flight_number"))
	origin := common.NormalizeICAO(field("origin"))
	destination := common.NormalizeICAO(field("destination"))

	switch {
	case flightNumber == "":
		return nil, "flight_number is required"
	case origin == "" || destination == "":
		return nil, "origin and destination are required"
	case !common.IsICAO(origin):
		return nil, fmt.Sprintf("origin %q is not a four-letter ICAO code", origin)
	case !common.IsICAO(destination):
		return nil, fmt.Sprintf("destination %q is not a four-letter ICAO code", destination)
	case origin == destination:
		return nil, "origin and destination must differ"
	}

	active := true
	if raw := field("active"); raw != "" {
		v, err := parseActive(raw)
		if err != nil {
			return nil, fmt.Sprintf("active value %q is not a boolean", raw)
		}
		active = v
	}

	route := &gorm.Route{
		FlightNumber: flightNumber,
		Origin:       origin,
		Destination:  destination,
		AircraftType: strings.ToUpper(field("aircraft_type")),
		IsActive:     active,
	}
	if est := geo.Estimate(origin, destination, 0); est != nil {
		distance := est.DistanceNM
		blockTime := est.FlightTimeHours
		route.DistanceNM = &distance
		route.BlockTimeHours = &blockTime
	}
	return route, ""
}

func parseActive(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// List returns catalog rows, optionally filtered by origin and destination
func (s *RouteCatalogService) List(ctx context.Context, origin, destination string, activeOnly bool) ([]gorm.Route, error) {
	routes, err := s.repo.List(ctx, repositories.RouteFilter{
		Origin:      common.NormalizeICAO(origin),
		Destination: common.NormalizeICAO(destination),
		ActiveOnly:  activeOnly,
	})
	if err != nil {
		return nil, dbError(err)
	}
	return routes, nil
}

func (s *RouteCatalogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return notFoundError("route")
	}
	return nil
}

// Estimate exposes the great-circle estimator. A nil result means insufficient data.
func (s *RouteCatalogService) Estimate(origin, destination string, speedKts float64) *geo.RouteEstimate {
	return geo.Estimate(origin, destination, speedKts)
}
