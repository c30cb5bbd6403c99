package gorm

import (
	"time"

	gormlib "gorm.io/gorm"
)

// Aircraft is one airframe of the fleet
type Aircraft struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Registration string    `gorm:"column:registration;type:varchar(16);not null;uniqueIndex" json:"registration"`
	TypeCode     string    `gorm:"column:type_code;type:varchar(8);not null" json:"type_code"`
	Name         string    `gorm:"column:name;type:varchar(100)" json:"name"`
	HomeBase     string    `gorm:"column:home_base;type:varchar(4)" json:"home_base"`
	Status       string    `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Aircraft) TableName() string {
	return "aircraft"
}

func (a *Aircraft) BeforeCreate(*gormlib.DB) error {
	newID(&a.ID)
	return nil
}
