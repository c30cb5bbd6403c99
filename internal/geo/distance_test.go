package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_KnownPair(t *testing.T) {
	est := Estimate("KJFK", "KLAX", 0)
	require.NotNil(t, est)

	assert.Equal(t, "KJFK", est.Origin)
	assert.Equal(t, "KLAX", est.Destination)
	assert.Equal(t, 2146, est.DistanceNM)
	assert.Equal(t, DefaultCruiseSpeedKts, est.CruiseSpeedKts)
	assert.Equal(t, 4.8, est.FlightTimeHours)
}

func TestEstimate_CustomSpeed(t *testing.T) {
	est := Estimate("kjfk", " klax ", 480)
	require.NotNil(t, est)

	assert.Equal(t, 2146, est.DistanceNM)
	assert.Equal(t, 4.5, est.FlightTimeHours)
}

func TestEstimate_NonFiniteSpeedUsesDefault(t *testing.T) {
	for _, speed := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		est := Estimate("KJFK", "KLAX", speed)
		require.NotNil(t, est)
		assert.Equal(t, DefaultCruiseSpeedKts, est.CruiseSpeedKts)
		assert.Equal(t, 4.8, est.FlightTimeHours)
	}
}

func TestEstimate_Transatlantic(t *testing.T) {
	est := Estimate("KJFK", "EGLL", 450)
	require.NotNil(t, est)

	assert.Equal(t, 2991, est.DistanceNM)
	assert.Equal(t, 6.6, est.FlightTimeHours)
}

func TestEstimate_MissingAirport(t *testing.T) {
	assert.Nil(t, Estimate("KJFK", "ZZZZ", 450))
	assert.Nil(t, Estimate("ZZZZ", "KJFK", 450))
	assert.Nil(t, Estimate("", "", 0))
}

func TestEstimate_SameAirportIsZero(t *testing.T) {
	for _, a := range Airports() {
		est := Estimate(a.ICAO, a.ICAO, 0)
		require.NotNil(t, est, a.ICAO)
		assert.Equal(t, 0, est.DistanceNM, a.ICAO)
		assert.Equal(t, 0.0, est.FlightTimeHours, a.ICAO)
	}
}

func TestEstimate_Symmetric(t *testing.T) {
	airports := Airports()
	for i, a := range airports {
		for _, b := range airports[i+1:] {
			ab := Estimate(a.ICAO, b.ICAO, 0)
			ba := Estimate(b.ICAO, a.ICAO, 0)
			require.NotNil(t, ab)
			require.NotNil(t, ba)
			if ab.DistanceNM != ba.DistanceNM {
				t.Errorf("%s-%s: %d != %d", a.ICAO, b.ICAO, ab.DistanceNM, ba.DistanceNM)
			}
		}
	}
}

func TestDistanceNM_Antipodal(t *testing.T) {
	d := DistanceNM(Coordinate{Lat: 0, Lon: 0}, Coordinate{Lat: 0, Lon: 180})
	assert.InDelta(t, EarthRadiusNM*3.141592653589793, d, 0.001)
}
