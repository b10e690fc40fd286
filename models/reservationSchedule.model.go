package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationSchedule is the materialized per-date/time booking unit for one
// employee. It is a derived projection of the work schedule and the event
// tables, recomputed by the materializer job.
type ReservationSchedule struct {
	gorm.Model
	ShopID     uint           `gorm:"not null;index" json:"shopId"`
	EmployeeID uint           `gorm:"not null;index:idx_employee_slot,unique" json:"employeeId"`
	Date       datatypes.Date `gorm:"type:date;not null;index:idx_employee_slot,unique" json:"-"`
	StartTime  string         `gorm:"size:5;not null;index:idx_employee_slot,unique" json:"startTime"` // "HH:MM"

	IsClosed       bool  `gorm:"default:false" json:"isClosed"`
	IsClosingEvent bool  `gorm:"default:false" json:"isClosingEvent"`
	ClosingEventID *uint `gorm:"index" json:"closingEventId,omitempty"`
	TimeEventID    *uint `gorm:"index" json:"timeEventId,omitempty"`
}
