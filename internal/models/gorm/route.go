package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Route is one row of the route catalog
type Route struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FlightNumber   string    `gorm:"column:flight_number;type:varchar(16);not null;uniqueIndex" json:"flight_number"`
	Origin         string    `gorm:"column:origin;type:varchar(4);not null;index" json:"origin"`
	Destination    string    `gorm:"column:destination;type:varchar(4);not null;index" json:"destination"`
	AircraftType   string    `gorm:"column:aircraft_type;type:varchar(16)" json:"aircraft_type"`
	DistanceNM     *int      `gorm:"column:distance_nm" json:"distance_nm"`
	BlockTimeHours *float64  `gorm:"column:block_time_hours;type:numeric(5,1)" json:"block_time_hours"`
	IsActive       bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Route) TableName() string {
	return "routes"
}

func (r *Route) BeforeCreate(*gormlib.DB) error {
	newID(&r.ID)
	return nil
}
