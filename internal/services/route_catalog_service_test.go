package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db/dbtest"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/metrics"
)

func newRouteService(t *testing.T) (*RouteCatalogService, *metrics.MetricsRegistry) {
	orm, _ := dbtest.New(t)
	m := metrics.NewMetricsRegistry()
	return NewRouteCatalogService(repositories.NewRouteRepository(orm), m), m
}

func TestRouteCatalogService_ImportCSV(t *testing.T) {
	svc, m := newRouteService(t)
	ctx := context.Background()

	csvDoc := strings.Join([]string{
		"Flight_Number,Origin,Destination,Aircraft_Type,Active",
		"sky100,kjfk,klax,b738,yes",
		"SKY101,KLAX,KJFK,B738,",
		"",
		"SKY102,KJFK,JFK,A320,true",
		",EGLL,KJFK,B77W,true",
		"SKY104,EGLL,EGLL,B77W,true",
		"SKY105,EGLL,KJFK,B77W,maybe",
		"SKY106,KJFK,ZZZZ,E175,false",
	}, "\n")

	result, err := svc.ImportCSV(ctx, strings.NewReader(csvDoc))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 4, result.Skipped)

	lines := make([]int, 0, len(result.Errors))
	for _, e := range result.Errors {
		lines = append(lines, e.Line)
	}
	if diff := cmp.Diff([]int{5, 6, 7, 8}, lines); diff != "" {
		t.Errorf("row error lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RoutesImportedTotal))

	routes, err := svc.List(ctx, "", "", false)
	require.NoError(t, err)
	require.Len(t, routes, 3)

	byNumber := map[string]int{}
	for i, r := range routes {
		byNumber[r.FlightNumber] = i
	}

	jfkLax := routes[byNumber["SKY100"]]
	assert.Equal(t, "KJFK", jfkLax.Origin)
	assert.Equal(t, "B738", jfkLax.AircraftType)
	assert.True(t, jfkLax.IsActive)
	require.NotNil(t, jfkLax.DistanceNM)
	assert.Equal(t, 2146, *jfkLax.DistanceNM)
	require.NotNil(t, jfkLax.BlockTimeHours)
	assert.InDelta(t, 4.8, *jfkLax.BlockTimeHours, 0.001)

	unknown := routes[byNumber["SKY106"]]
	assert.False(t, unknown.IsActive)
	assert.Nil(t, unknown.DistanceNM)
	assert.Nil(t, unknown.BlockTimeHours)
}

func TestRouteCatalogService_ImportIsIdempotent(t *testing.T) {
	svc, _ := newRouteService(t)
	ctx := context.Background()

	doc := "flight_number,origin,destination\nSKY1,KJFK,EGLL\nSKY2,EGLL,KJFK\n"
	for i := 0; i < 2; i++ {
		result, err := svc.ImportCSV(ctx, strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
	}

	routes, err := svc.List(ctx, "", "", false)
	require.NoError(t, err)
	assert.Len(t, routes, 2)

	fromLondon, err := svc.List(ctx, "egll", "", true)
	require.NoError(t, err)
	require.Len(t, fromLondon, 1)
	assert.Equal(t, "SKY2", fromLondon[0].FlightNumber)
}

func TestRouteCatalogService_ImportRejectsBadHeader(t *testing.T) {
	svc, _ := newRouteService(t)

	for _, doc := range []string{"", "flight_number,origin\nSKY1,KJFK\n"} {
		_, err := svc.ImportCSV(context.Background(), strings.NewReader(doc))
		se, ok := AsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, constants.ErrCodeValidationFailed, se.Code)
	}
}

func TestRouteCatalogService_DeleteAndEstimate(t *testing.T) {
	svc, _ := newRouteService(t)
	ctx := context.Background()

	_, err := svc.ImportCSV(ctx, strings.NewReader("flight_number,origin,destination\nSKY1,KJFK,EGLL\n"))
	require.NoError(t, err)
	routes, err := svc.List(ctx, "", "", false)
	require.NoError(t, err)
	require.Len(t, routes, 1)

	require.NoError(t, svc.Delete(ctx, routes[0].ID))
	err = svc.Delete(ctx, routes[0].ID)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, constants.ErrCodeNotFound, se.Code)

	est := svc.Estimate("KJFK", "EGLL", 0)
	require.NotNil(t, est)
	assert.Equal(t, 2991, est.DistanceNM)
	assert.Nil(t, svc.Estimate("KJFK", "ZZZZ", 0))
}
