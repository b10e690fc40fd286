package workScheduleService

import (
	"booksly/apperror"
	"booksly/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Get returns the weekly entry for one employee and weekday.
func Get(db *gorm.DB, employeeID uint, weekday time.Weekday) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule
	err := db.Where("employee_id = ? AND day_of_week = ?", employeeID, weekday).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrWorkScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// ValidateWeek checks that the entries form a complete week: exactly 7
// entries covering all 7 distinct weekdays.
func ValidateWeek(entries []models.WorkSchedule) error {
	if len(entries) != 7 {
		return apperror.ErrWorkScheduleMustSevenDays
	}

	seen := make(map[time.Weekday]bool, 7)
	for _, entry := range entries {
		if seen[entry.DayOfWeek] {
			return apperror.ErrWorkScheduleMustSevenDays
		}
		seen[entry.DayOfWeek] = true
	}
	return nil
}

// ReplaceAll swaps the employee's whole week in one transaction. Either all 7
// entries persist or none do.
func ReplaceAll(db *gorm.DB, employeeID uint, entries []models.WorkSchedule) error {
	if err := ValidateWeek(entries); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("employee_id = ?", employeeID).
			Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].ID = 0
			entries[i].EmployeeID = employeeID
		}
		return tx.Create(&entries).Error
	})
}
