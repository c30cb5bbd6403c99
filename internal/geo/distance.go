// Package geo holds the embedded airport coordinate table and the
// great-circle distance and flight-time estimates built on it.
package geo

import "math"

const (
	// EarthRadiusNM is the mean Earth radius in nautical miles
	EarthRadiusNM = 3440.065

	// DefaultCruiseSpeedKts is used when no cruise speed is supplied
	DefaultCruiseSpeedKts = 450.0
)

// RouteEstimate is the result of a great-circle estimate between two table airports
type RouteEstimate struct {
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	DistanceNM      int     `json:"distance_nm"`
	CruiseSpeedKts  float64 `json:"cruise_speed_kts"`
	FlightTimeHours float64 `json:"flight_time_hours"`
}

// DistanceNM returns the haversine great-circle distance between two points
func DistanceNM(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusNM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Estimate computes distance and flight time between two ICAO codes.
// It returns nil when either code is missing from the table.
func Estimate(origin, destination string, speedKts float64) *RouteEstimate {
	from, ok := Lookup(origin)
	if !ok {
		return nil
	}
	to, ok := Lookup(destination)
	if !ok {
		return nil
	}

	if speedKts <= 0 || math.IsNaN(speedKts) || math.IsInf(speedKts, 0) {
		speedKts = DefaultCruiseSpeedKts
	}

	distance := int(math.Round(DistanceNM(from.Coordinate, to.Coordinate)))

	return &RouteEstimate{
		Origin:          from.ICAO,
		Destination:     to.ICAO,
		DistanceNM:      distance,
		CruiseSpeedKts:  speedKts,
		FlightTimeHours: math.Round(float64(distance)/speedKts*10) / 10,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
