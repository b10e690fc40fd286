package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClosingEvent is a date-scoped closure. A nil EmployeeID closes the whole
// shop for that date; otherwise only the one employee is closed. Closing
// events take precedence over time events and the base schedule.
type ClosingEvent struct {
	gorm.Model
	ShopID     uint           `gorm:"not null;index" json:"shopId"`
	EmployeeID *uint          `gorm:"index" json:"employeeId,omitempty"`
	Date       datatypes.Date `gorm:"type:date;not null;index" json:"-"`
	IsAllDay   bool           `gorm:"default:false" json:"isAllDay"`
	StartTime  string         `gorm:"size:5" json:"startTime"` // "HH:MM", unused when IsAllDay
	EndTime    string         `gorm:"size:5" json:"endTime"`

	Menus []ClosingEventMenu `gorm:"constraint:OnDelete:CASCADE" json:"menus,omitempty"`
}

type ClosingEventMenu struct {
	gorm.Model
	ClosingEventID uint `gorm:"not null;index" json:"closingEventId"`
	MenuID         uint `gorm:"not null" json:"menuId"`
}

// MarshalJSON renders the closure date as "YYYY-MM-DD".
func (e ClosingEvent) MarshalJSON() ([]byte, error) {
	type alias ClosingEvent
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(e), time.Time(e.Date).Format("2006-01-02")})
}
