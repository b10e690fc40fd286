package utils

import (
	"booksly/database"
	"booksly/models"
	"testing"
	"time"

	"github.com/jinzhu/now"
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

func seedEmployee(t *testing.T, db *gorm.DB, cycle int, dayOff time.Weekday) *models.Employee {
	t.Helper()

	shop := models.Shop{OwnerID: 1, Name: "Salon"}
	require.NoError(t, db.Create(&shop).Error)

	employee := models.Employee{ShopID: shop.ID, Name: "Jae", SchedulingCycle: cycle}
	require.NoError(t, db.Create(&employee).Error)

	for day := time.Sunday; day <= time.Saturday; day++ {
		require.NoError(t, db.Create(&models.WorkSchedule{
			EmployeeID: employee.ID,
			DayOfWeek:  day,
			StartTime:  "09:00",
			EndTime:    "12:00",
			IsDayOff:   day == dayOff,
		}).Error)
	}
	return &employee
}

func TestMaterializeGeneratesHourlySlots(t *testing.T) {
	db := setupTestDb(t)
	today := now.BeginningOfDay()
	tomorrow := today.AddDate(0, 0, 1)

	employee := seedEmployee(t, db, 2, tomorrow.Weekday())

	require.NoError(t, MaterializeReservationSchedules(db, today))

	var todaySlots []models.ReservationSchedule
	require.NoError(t, db.Where("employee_id = ? AND date = ?", employee.ID, models.DateOf(today)).
		Order("start_time").Find(&todaySlots).Error)
	require.Len(t, todaySlots, 3)
	assert.Equal(t, "09:00", todaySlots[0].StartTime)
	assert.Equal(t, "11:00", todaySlots[2].StartTime)
	for _, slot := range todaySlots {
		assert.False(t, slot.IsClosed)
	}

	var offSlots []models.ReservationSchedule
	require.NoError(t, db.Where("employee_id = ? AND date = ?", employee.ID, models.DateOf(tomorrow)).
		Find(&offSlots).Error)
	require.Len(t, offSlots, 1)
	assert.True(t, offSlots[0].IsClosed)
}

func TestMaterializeAppliesEventPrecedence(t *testing.T) {
	db := setupTestDb(t)
	today := now.BeginningOfDay()

	// No day off inside a 1-day cycle.
	employee := seedEmployee(t, db, 1, today.AddDate(0, 0, 3).Weekday())

	timeEvent := models.TimeEvent{
		ShopID:         employee.ShopID,
		Title:          "Morning deal",
		DiscountRate:   10,
		RecurrenceKind: models.RecurrenceWeekday,
		StartTime:      "09:00",
		EndTime:        "11:00",
		Weekdays:       []models.TimeEventWeekday{{DayOfWeek: today.Weekday()}},
		Employees:      []models.EmployeeTimeEvent{{EmployeeID: employee.ID}},
	}
	require.NoError(t, db.Create(&timeEvent).Error)

	closing := models.ClosingEvent{
		ShopID:     employee.ShopID,
		EmployeeID: &employee.ID,
		Date:       models.DateOf(today),
		StartTime:  "10:00",
		EndTime:    "11:00",
	}
	require.NoError(t, db.Create(&closing).Error)

	require.NoError(t, MaterializeReservationSchedules(db, today))

	slots := loadSlots(t, db, employee.ID, today)
	require.Len(t, slots, 3)

	// 09:00: only the time event covers it.
	assert.False(t, slots[0].IsClosingEvent)
	require.NotNil(t, slots[0].TimeEventID)
	assert.Equal(t, timeEvent.ID, *slots[0].TimeEventID)

	// 10:00: both events cover it; the closing event wins.
	assert.True(t, slots[1].IsClosingEvent)
	require.NotNil(t, slots[1].ClosingEventID)
	assert.Equal(t, closing.ID, *slots[1].ClosingEventID)
	assert.Nil(t, slots[1].TimeEventID)

	// 11:00: plain slot.
	assert.False(t, slots[2].IsClosingEvent)
	assert.Nil(t, slots[2].TimeEventID)
}

func TestMaterializeIsIdempotent(t *testing.T) {
	db := setupTestDb(t)
	today := now.BeginningOfDay()

	employee := seedEmployee(t, db, 3, today.AddDate(0, 0, 1).Weekday())

	require.NoError(t, MaterializeReservationSchedules(db, today))
	require.NoError(t, MaterializeReservationSchedules(db, today))

	var count int64
	require.NoError(t, db.Model(&models.ReservationSchedule{}).
		Where("employee_id = ?", employee.ID).Count(&count).Error)
	// 2 working days x 3 slots + 1 closed day.
	assert.EqualValues(t, 7, count)
}

func TestMaterializeSkipsIncompleteSchedules(t *testing.T) {
	db := setupTestDb(t)
	today := now.BeginningOfDay()

	employee := seedEmployee(t, db, 2, today.Weekday())
	require.NoError(t, db.Unscoped().
		Where("employee_id = ? AND day_of_week = ?", employee.ID, time.Monday).
		Delete(&models.WorkSchedule{}).Error)

	require.NoError(t, MaterializeReservationSchedules(db, today))

	var count int64
	require.NoError(t, db.Model(&models.ReservationSchedule{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMaterializeClosesSlotsAfterDayOffChange(t *testing.T) {
	db := setupTestDb(t)
	today := now.BeginningOfDay()

	employee := seedEmployee(t, db, 1, today.AddDate(0, 0, 3).Weekday())

	require.NoError(t, MaterializeReservationSchedules(db, today))
	require.Len(t, loadSlots(t, db, employee.ID, today), 3)

	require.NoError(t, db.Model(&models.WorkSchedule{}).
		Where("employee_id = ? AND day_of_week = ?", employee.ID, today.Weekday()).
		Update("is_day_off", true).Error)

	require.NoError(t, MaterializeReservationSchedules(db, today))

	var open int64
	require.NoError(t, db.Model(&models.ReservationSchedule{}).
		Where("employee_id = ? AND date = ? AND is_closed = false", employee.ID, models.DateOf(today)).
		Count(&open).Error)
	assert.EqualValues(t, 0, open, "slots from the old working window must not stay bookable")
}

func TestMaterializeClosesSlotsOutsideShrunkWindow(t *testing.T) {
	db := setupTestDb(t)
	today := now.BeginningOfDay()

	employee := seedEmployee(t, db, 1, today.AddDate(0, 0, 3).Weekday())

	require.NoError(t, MaterializeReservationSchedules(db, today))

	require.NoError(t, db.Model(&models.WorkSchedule{}).
		Where("employee_id = ? AND day_of_week = ?", employee.ID, today.Weekday()).
		Update("end_time", "11:00").Error)

	require.NoError(t, MaterializeReservationSchedules(db, today))

	slots := loadSlots(t, db, employee.ID, today)
	require.Len(t, slots, 3)
	assert.False(t, slots[0].IsClosed)
	assert.False(t, slots[1].IsClosed)
	assert.True(t, slots[2].IsClosed, "the 11:00 slot left the window and must close")
}

func loadSlots(t *testing.T, db *gorm.DB, employeeID uint, date time.Time) []models.ReservationSchedule {
	t.Helper()

	var slots []models.ReservationSchedule
	require.NoError(t, db.Where("employee_id = ? AND date = ?", employeeID, models.DateOf(date)).
		Order("start_time").Find(&slots).Error)
	return slots
}
