package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlib "gorm.io/gorm"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/dbtest"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/metrics"
	"skyward/opsportal/internal/models/dtos"
	"skyward/opsportal/internal/models/gorm"
)

func seedPilot(t *testing.T, orm *gormlib.DB, callsign string, hours float64) *gorm.Pilot {
	t.Helper()
	repo := repositories.NewPilotRepository(orm)
	pilot := &gorm.Pilot{Callsign: callsign, Name: "Pilot " + callsign, Role: constants.RolePilot.String(), IsActive: true}
	require.NoError(t, repo.Create(context.Background(), pilot))
	if hours > 0 {
		require.NoError(t, repo.SaveStats(context.Background(), &gorm.PilotStats{PilotID: pilot.ID, TotalHours: hours, Flights: 1, RankName: "Cadet"}))
	}
	return pilot
}

func validPirep() dtos.SubmitPirepReq {
	return dtos.SubmitPirepReq{
		FlightNumber:    "sky100",
		Origin:          "kjfk",
		Destination:     "klax",
		FlightTimeHours: 6.5,
	}
}

func TestPirepService_SubmitValidation(t *testing.T) {
	orm, _ := dbtest.New(t)
	svc := NewPirepService(orm, nil)
	pilot := seedPilot(t, orm, "SKY001", 0)
	ctx := context.Background()

	bad := []dtos.SubmitPirepReq{
		{Origin: "KJFK", Destination: "KLAX", FlightTimeHours: 1},
		{FlightNumber: "SKY1", Origin: "JFK", Destination: "KLAX", FlightTimeHours: 1},
		{FlightNumber: "SKY1", Origin: "KJFK", Destination: "KLAX", FlightTimeHours: 0},
		{FlightNumber: "SKY1", Origin: "KJFK", Destination: "KLAX", FlightTimeHours: 25},
		{FlightNumber: "SKY1", Origin: "KJFK", Destination: "KLAX", FlightTimeHours: 2, AircraftRegistration: "N000SK"},
	}
	for _, req := range bad {
		_, err := svc.Submit(ctx, pilot.ID, req)
		se, ok := AsServiceError(err)
		require.True(t, ok, "%+v", req)
		assert.Equal(t, constants.ErrCodeValidationFailed, se.Code, "%+v", req)
	}

	_, err := svc.Submit(ctx, "00000000-0000-0000-0000-000000000000", validPirep())
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeNotFound, se.Code)
}

func TestPirepService_ApproveCreditsHoursAndPromotes(t *testing.T) {
	orm, _ := dbtest.New(t)
	m := metrics.NewMetricsRegistry()
	svc := NewPirepService(orm, m)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	pilot := seedPilot(t, orm, "SKY001", 20)
	_, err := NewMultiplierService(repositories.NewMultiplierRepository(orm)).
		Create(ctx, dtos.MultiplierReq{Name: "long haul", MinHours: 6, Multiplier: 1.5})
	require.NoError(t, err)

	pirep, err := svc.Submit(ctx, pilot.ID, validPirep())
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, pirep.Status)
	assert.Equal(t, "SKY100", pirep.FlightNumber)

	reviewed, err := svc.Review(ctx, pirep.ID, "admin-1", dtos.ReviewReq{Decision: "APPROVE", Note: " nice landing "})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.Multiplier)
	assert.Equal(t, 1.5, *reviewed.Multiplier)
	require.NotNil(t, reviewed.CreditedHours)
	assert.InDelta(t, 9.75, *reviewed.CreditedHours, 0.001)
	assert.Equal(t, "nice landing", reviewed.ReviewNote)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.True(t, reviewed.ReviewedAt.Equal(fixed))

	stats, err := repositories.NewPilotRepository(orm).GetStats(ctx, pilot.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.InDelta(t, 29.75, stats.TotalHours, 0.001)
	assert.Equal(t, 2, stats.Flights)
	assert.Equal(t, "Second Officer", stats.RankName)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PirepsReviewedTotal.WithLabelValues(constants.DecisionApprove)))
}

func TestPirepService_ApproveWithoutStatsRow(t *testing.T) {
	orm, _ := dbtest.New(t)
	svc := NewPirepService(orm, nil)
	ctx := context.Background()
	pilot := seedPilot(t, orm, "SKY002", 0)

	req := validPirep()
	req.FlightTimeHours = 1.25
	pirep, err := svc.Submit(ctx, pilot.ID, req)
	require.NoError(t, err)

	_, err = svc.Review(ctx, pirep.ID, "admin-1", dtos.ReviewReq{Decision: constants.DecisionApprove})
	require.NoError(t, err)

	stats, err := repositories.NewPilotRepository(orm).GetStats(ctx, pilot.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.InDelta(t, 1.25, stats.TotalHours, 0.001)
	assert.Equal(t, 1, stats.Flights)
	assert.Equal(t, "Cadet", stats.RankName)
}

func TestPirepService_RejectAndDoubleReview(t *testing.T) {
	orm, _ := dbtest.New(t)
	svc := NewPirepService(orm, nil)
	ctx := context.Background()
	pilot := seedPilot(t, orm, "SKY003", 0)

	pirep, err := svc.Submit(ctx, pilot.ID, validPirep())
	require.NoError(t, err)

	_, err = svc.Review(ctx, pirep.ID, "admin-1", dtos.ReviewReq{Decision: "maybe"})
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeValidationFailed, se.Code)

	rejected, err := svc.Review(ctx, pirep.ID, "admin-1", dtos.ReviewReq{Decision: constants.DecisionReject})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRejected, rejected.Status)
	assert.Nil(t, rejected.CreditedHours)

	_, err = svc.Review(ctx, pirep.ID, "admin-1", dtos.ReviewReq{Decision: constants.DecisionApprove})
	se, ok = AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeInvalidState, se.Code)

	stats, err := repositories.NewPilotRepository(orm).GetStats(ctx, pilot.ID)
	require.NoError(t, err)
	assert.Nil(t, stats)

	_, err = svc.Review(ctx, "00000000-0000-0000-0000-000000000000", "admin-1", dtos.ReviewReq{Decision: constants.DecisionApprove})
	se, ok = AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeNotFound, se.Code)
}

func TestPirepService_Lists(t *testing.T) {
	orm, _ := dbtest.New(t)
	svc := NewPirepService(orm, nil)
	ctx := context.Background()
	a := seedPilot(t, orm, "SKY010", 0)
	b := seedPilot(t, orm, "SKY011", 0)

	first, err := svc.Submit(ctx, a.ID, validPirep())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, a.ID, validPirep())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, b.ID, validPirep())
	require.NoError(t, err)
	_, err = svc.Review(ctx, first.ID, "admin", dtos.ReviewReq{Decision: constants.DecisionReject})
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := svc.List(ctx, constants.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.List(ctx, "lost")
	assert.Error(t, err)
}

func TestPirepService_SubmitChecksFleet(t *testing.T) {
	orm, _ := dbtest.New(t)
	svc := NewPirepService(orm, nil)
	fleet := NewFleetService(repositories.NewAircraftRepository(orm))
	ctx := context.Background()
	pilot := seedPilot(t, orm, "SKY020", 0)

	_, err := fleet.Create(ctx, dtos.AircraftReq{Registration: "N738SK", TypeCode: "B738"})
	require.NoError(t, err)
	_, err = fleet.Create(ctx, dtos.AircraftReq{Registration: "N320SK", TypeCode: "A320", Status: constants.AircraftMaintenance})
	require.NoError(t, err)

	req := validPirep()
	req.AircraftRegistration = "n738sk"
	pirep, err := svc.Submit(ctx, pilot.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "N738SK", pirep.AircraftRegistration)

	req.AircraftRegistration = "N320SK"
	_, err = svc.Submit(ctx, pilot.ID, req)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeValidationFailed, se.Code)
}
