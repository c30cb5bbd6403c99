package dtos

// AirportStatsReq is the body of POST /api/proxy/airport-stats
type AirportStatsReq struct {
	ICAO string `json:"icao"`
}

// UserStatsReq is the body of POST /api/proxy/user-stats. One of the fields is required.
type UserStatsReq struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// MultiplierReq creates or replaces a flight-hour multiplier rule
type MultiplierReq struct {
	Name       string   `json:"name"`
	MinHours   float64  `json:"min_hours"`
	MaxHours   *float64 `json:"max_hours"`
	Multiplier float64  `json:"multiplier"`
	IsActive   *bool    `json:"is_active"`
}

// SubmitPirepReq is filed by a pilot after a flight
type SubmitPirepReq struct {
	FlightNumber         string  `json:"flight_number"`
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	AircraftRegistration string  `json:"aircraft_registration"`
	FlightTimeHours      float64 `json:"flight_time_hours"`
}

// ReviewReq approves or rejects a pending PIREP or registration
type ReviewReq struct {
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

// AircraftReq creates or updates a fleet airframe
type AircraftReq struct {
	Registration string `json:"registration"`
	TypeCode     string `json:"type_code"`
	Name         string `json:"name"`
	HomeBase     string `json:"home_base"`
	Status       string `json:"status"`
}

// RegistrationReq is a public application to join
type RegistrationReq struct {
	Name              string `json:"name"`
	IFCUsername       string `json:"ifc_username"`
	RequestedCallsign string `json:"requested_callsign"`
}
