package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkSchedule is one weekly entry per employee per day of week. A complete
// schedule is exactly 7 entries, one for each weekday.
type WorkSchedule struct {
	gorm.Model
	EmployeeID uint         `gorm:"not null;index:idx_employee_weekday,unique" json:"employeeId"`
	DayOfWeek  time.Weekday `gorm:"not null;index:idx_employee_weekday,unique" json:"dayOfWeek"`
	StartTime  string       `gorm:"size:5" json:"startTime"` // "HH:MM"
	EndTime    string       `gorm:"size:5" json:"endTime"`
	IsDayOff   bool         `gorm:"default:false" json:"isDayOff"`
}
