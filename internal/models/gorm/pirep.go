package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Pirep is a pilot report awaiting or past review
type Pirep struct {
	ID                   string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	PilotID              string     `gorm:"column:pilot_id;type:uuid;not null;index" json:"pilot_id"`
	FlightNumber         string     `gorm:"column:flight_number;type:varchar(16);not null" json:"flight_number"`
	Origin               string     `gorm:"column:origin;type:varchar(4);not null" json:"origin"`
	Destination          string     `gorm:"column:destination;type:varchar(4);not null" json:"destination"`
	AircraftRegistration string     `gorm:"column:aircraft_registration;type:varchar(16)" json:"aircraft_registration"`
	FlightTimeHours      float64    `gorm:"column:flight_time_hours;type:numeric(5,2);not null" json:"flight_time_hours"`
	Multiplier           *float64   `gorm:"column:multiplier;type:numeric(10,4)" json:"multiplier"`
	CreditedHours        *float64   `gorm:"column:credited_hours;type:numeric(6,2)" json:"credited_hours"`
	Status               string     `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	ReviewerID           *string    `gorm:"column:reviewer_id;type:uuid" json:"reviewer_id"`
	ReviewNote           string     `gorm:"column:review_note;type:text" json:"review_note"`
	SubmittedAt          time.Time  `gorm:"column:submitted_at;not null" json:"submitted_at"`
	ReviewedAt           *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
}

func (Pirep) TableName() string {
	return "pireps"
}

func (p *Pirep) BeforeCreate(*gormlib.DB) error {
	newID(&p.ID)
	return nil
}
