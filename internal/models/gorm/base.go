package gorm

import "github.com/google/uuid"

// newID fills an empty primary key with a random UUID. Postgres would do this with
// gen_random_uuid(), but the sqlite test databases cannot.
func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

// AllModels lists every table for AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&Pilot{},
		&PilotStats{},
		&FlightHourMultiplier{},
		&Route{},
		&Pirep{},
		&Aircraft{},
		&PilotRegistration{},
	}
}
