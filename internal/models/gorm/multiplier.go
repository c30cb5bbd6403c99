package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// FlightHourMultiplier scales the credited hours of flights whose duration falls in
// [MinHours, MaxHours). A nil MaxHours means the band is unbounded above.
type FlightHourMultiplier struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	MinHours   float64   `gorm:"column:min_hours;type:numeric(8,2);not null" json:"min_hours"`
	MaxHours   *float64  `gorm:"column:max_hours;type:numeric(8,2)" json:"max_hours"`
	Multiplier float64   `gorm:"column:multiplier;type:numeric(10,4);not null" json:"multiplier"`
	IsActive   bool      `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (FlightHourMultiplier) TableName() string {
	return "flight_hour_multipliers"
}

func (m *FlightHourMultiplier) BeforeCreate(*gormlib.DB) error {
	newID(&m.ID)
	return nil
}

// Contains reports whether hours falls inside the rule's band
func (m FlightHourMultiplier) Contains(hours float64) bool {
	if hours < m.MinHours {
		return false
	}
	return m.MaxHours == nil || hours < *m.MaxHours
}
