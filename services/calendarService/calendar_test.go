package calendarService

import (
	"booksly/apperror"
	"booksly/database"
	"booksly/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedEmployee(t *testing.T, db *gorm.DB, cycle int, daysOff ...time.Weekday) *models.Employee {
	t.Helper()

	shop := models.Shop{OwnerID: 1, Name: "Studio"}
	require.NoError(t, db.Create(&shop).Error)

	employee := models.Employee{ShopID: shop.ID, Name: "Mina", SchedulingCycle: cycle}
	require.NoError(t, db.Create(&employee).Error)

	off := make(map[time.Weekday]bool)
	for _, day := range daysOff {
		off[day] = true
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		require.NoError(t, db.Create(&models.WorkSchedule{
			EmployeeID: employee.ID,
			DayOfWeek:  day,
			StartTime:  "09:00",
			EndTime:    "18:00",
			IsDayOff:   off[day],
		}).Error)
	}
	return &employee
}

func TestBuildCalendarPartitionsCycle(t *testing.T) {
	db := setupTestDb(t)
	employee := seedEmployee(t, db, 14, time.Monday, time.Tuesday)

	calendar, err := BuildCalendar(db, employee, 14)
	require.NoError(t, err)

	assert.Len(t, calendar.Workdays, 10)
	assert.Len(t, calendar.Holidays, 4)

	seen := make(map[string]bool)
	for _, date := range append(calendar.Workdays, calendar.Holidays...) {
		key := date.Format("2006-01-02")
		assert.False(t, seen[key], "date %s appears twice", key)
		seen[key] = true
	}
	assert.Len(t, seen, 14)

	for _, date := range calendar.Holidays {
		assert.Contains(t, []time.Weekday{time.Monday, time.Tuesday}, date.Weekday())
	}
}

func TestBuildCalendarSingleDayCycle(t *testing.T) {
	db := setupTestDb(t)
	employee := seedEmployee(t, db, 1)

	calendar, err := BuildCalendar(db, employee, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, len(calendar.Workdays)+len(calendar.Holidays))
}

func TestBuildCalendarRejectsIncompleteWeek(t *testing.T) {
	db := setupTestDb(t)
	employee := seedEmployee(t, db, 7)

	require.NoError(t, db.Unscoped().
		Where("employee_id = ? AND day_of_week = ?", employee.ID, time.Friday).
		Delete(&models.WorkSchedule{}).Error)

	_, err := BuildCalendar(db, employee, 7)
	assert.ErrorIs(t, err, apperror.ErrWorkScheduleMustSevenDays)
}

func TestGetCalendarDatesChecksOwnership(t *testing.T) {
	db := setupTestDb(t)
	employee := seedEmployee(t, db, 7)

	otherShop := models.Shop{OwnerID: 1, Name: "Other"}
	require.NoError(t, db.Create(&otherShop).Error)

	_, err := GetCalendarDates(db, otherShop.ID, employee.ID)
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotBelongShop)

	_, err = GetCalendarDates(db, 999, employee.ID)
	assert.ErrorIs(t, err, apperror.ErrShopNotFound)

	_, err = GetCalendarDates(db, employee.ShopID, 999)
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
}

func TestGetCalendarDatesUsesConfiguredCycle(t *testing.T) {
	db := setupTestDb(t)
	employee := seedEmployee(t, db, 5)

	calendar, err := GetCalendarDates(db, employee.ShopID, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, len(calendar.Workdays)+len(calendar.Holidays))
}
