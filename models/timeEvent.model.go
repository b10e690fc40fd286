package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recurrence kinds for a TimeEvent. The kind determines which recurrence set
// is populated: weekday events carry TimeEventWeekday rows, date events carry
// TimeEventDate rows, and the other set stays empty.
const (
	RecurrenceNone    = "NONE"
	RecurrenceWeekday = "WEEKDAY"
	RecurrenceDate    = "DATE"
)

// TimeEvent is a recurring, time-windowed promotional override (discount)
// attachable to specific weekdays or explicit calendar dates.
type TimeEvent struct {
	gorm.Model
	ShopID         uint   `gorm:"not null;index" json:"shopId"`
	Title          string `gorm:"not null" json:"title"`
	DiscountRate   int    `gorm:"not null" json:"discountRate"` // percent, 0..100
	RecurrenceKind string `gorm:"size:10;not null" json:"recurrenceKind"`
	StartTime      string `gorm:"size:5" json:"startTime"` // "HH:MM"
	EndTime        string `gorm:"size:5" json:"endTime"`

	Weekdays  []TimeEventWeekday  `gorm:"constraint:OnDelete:CASCADE" json:"weekdays,omitempty"`
	Dates     []TimeEventDate     `gorm:"constraint:OnDelete:CASCADE" json:"dates,omitempty"`
	Menus     []TimeEventMenu     `gorm:"constraint:OnDelete:CASCADE" json:"menus,omitempty"`
	Employees []EmployeeTimeEvent `gorm:"constraint:OnDelete:CASCADE" json:"employees,omitempty"`
}

type TimeEventWeekday struct {
	gorm.Model
	TimeEventID uint         `gorm:"not null;index" json:"timeEventId"`
	DayOfWeek   time.Weekday `gorm:"not null" json:"dayOfWeek"`
}

type TimeEventDate struct {
	gorm.Model
	TimeEventID uint           `gorm:"not null;index" json:"timeEventId"`
	Date        datatypes.Date `gorm:"type:date;not null" json:"-"`
}

// MarshalJSON renders the date as "YYYY-MM-DD"; datatypes.Date has no JSON
// form of its own.
func (d TimeEventDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TimeEventID uint   `json:"timeEventId"`
		Date        string `json:"date"`
	}{d.TimeEventID, time.Time(d.Date).Format("2006-01-02")})
}

type TimeEventMenu struct {
	gorm.Model
	TimeEventID uint `gorm:"not null;index" json:"timeEventId"`
	MenuID      uint `gorm:"not null" json:"menuId"`
}

type EmployeeTimeEvent struct {
	gorm.Model
	TimeEventID uint `gorm:"not null;index" json:"timeEventId"`
	EmployeeID  uint `gorm:"not null;index" json:"employeeId"`
}

// DateOf truncates t to a calendar date at UTC midnight so that stored dates
// compare equal regardless of the wall clock they were created with.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
