package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Pilot is a member of the virtual airline
type Pilot struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Callsign    string    `gorm:"column:callsign;type:varchar(16);not null;uniqueIndex" json:"callsign"`
	Name        string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	IFCUsername string    `gorm:"column:ifc_username;type:varchar(64)" json:"ifc_username"`
	Role        string    `gorm:"column:role;type:varchar(16);not null" json:"role"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Pilot) TableName() string {
	return "pilots"
}

func (p *Pilot) BeforeCreate(*gormlib.DB) error {
	newID(&p.ID)
	return nil
}

// PilotStats accumulates credited hours from approved PIREPs
type PilotStats struct {
	PilotID    string    `gorm:"column:pilot_id;primaryKey;type:uuid" json:"pilot_id"`
	TotalHours float64   `gorm:"column:total_hours;type:numeric(12,2);not null" json:"total_hours"`
	Flights    int       `gorm:"column:flights;not null" json:"flights"`
	RankName   string    `gorm:"column:rank_name;type:varchar(64);not null" json:"rank_name"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PilotStats) TableName() string {
	return "pilot_stats"
}
