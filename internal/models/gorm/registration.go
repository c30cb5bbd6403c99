package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// PilotRegistration is an application to join the virtual airline
type PilotRegistration struct {
	ID                string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name              string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	IFCUsername       string    `gorm:"column:ifc_username;type:varchar(64);not null" json:"ifc_username"`
	RequestedCallsign string    `gorm:"column:requested_callsign;type:varchar(16);not null" json:"requested_callsign"`
	Status            string    `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	ReviewNote        string    `gorm:"column:review_note;type:text" json:"review_note"`
	PilotID           *string   `gorm:"column:pilot_id;type:uuid" json:"pilot_id"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PilotRegistration) TableName() string {
	return "pilot_registrations"
}

func (r *PilotRegistration) BeforeCreate(*gormlib.DB) error {
	newID(&r.ID)
	return nil
}
