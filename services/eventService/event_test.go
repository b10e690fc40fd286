package eventService

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

const ownerID = uint(7)

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

func seedShop(t *testing.T, db *gorm.DB) (*models.Shop, *models.Employee, *models.Menu) {
	t.Helper()

	shop := models.Shop{OwnerID: ownerID, Name: "Salon"}
	require.NoError(t, db.Create(&shop).Error)

	employee := models.Employee{ShopID: shop.ID, Name: "Jae", SchedulingCycle: 14}
	require.NoError(t, db.Create(&employee).Error)

	menu := models.Menu{ShopID: shop.ID, MenuName: "Cut", Price: 20000}
	require.NoError(t, db.Create(&menu).Error)

	return &shop, &employee, &menu
}

func weekdayEventInput(shop *models.Shop, employee *models.Employee, menu *models.Menu, weekdays ...time.Weekday) CreateTimeEventsInput {
	return CreateTimeEventsInput{
		ShopID:         shop.ID,
		Title:          "Morning discount",
		DiscountRate:   20,
		RecurrenceKind: models.RecurrenceWeekday,
		Weekdays:       weekdays,
		StartTime:      "09:00",
		EndTime:        "12:00",
		MenuIDs:        []uint{menu.ID},
		EmployeeIDs:    []uint{employee.ID},
	}
}

func TestCreateTimeEventWeekdayRecurrence(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	event, err := CreateTimeEvent(db, ownerID, weekdayEventInput(shop, employee, menu, time.Monday, time.Wednesday))
	require.NoError(t, err)
	assert.Len(t, event.Weekdays, 2)
	assert.Empty(t, event.Dates)
}

func TestCreateTimeEventRejectsEmptyWeekdaySet(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	_, err := CreateTimeEvent(db, ownerID, weekdayEventInput(shop, employee, menu))
	assert.ErrorIs(t, err, apperror.ErrEventWeekdaysRequired)
}

func TestCreateTimeEventRejectsEmptyDateSet(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	in := weekdayEventInput(shop, employee, menu)
	in.RecurrenceKind = models.RecurrenceDate
	_, err := CreateTimeEvent(db, ownerID, in)
	assert.ErrorIs(t, err, apperror.ErrEventDatesRequired)
}

func TestCreateTimeEventRejectsBadDiscount(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	in := weekdayEventInput(shop, employee, menu, time.Monday)
	in.DiscountRate = 120
	_, err := CreateTimeEvent(db, ownerID, in)
	assert.ErrorIs(t, err, apperror.ErrDiscountRateInvalid)

	in.DiscountRate = -5
	_, err = CreateTimeEvent(db, ownerID, in)
	assert.ErrorIs(t, err, apperror.ErrDiscountRateInvalid)
}

func TestCreateTimeEventRejectsForeignEmployee(t *testing.T) {
	db := setupTestDb(t)
	shop, _, menu := seedShop(t, db)

	otherShop := models.Shop{OwnerID: ownerID, Name: "Other"}
	require.NoError(t, db.Create(&otherShop).Error)
	outsider := models.Employee{ShopID: otherShop.ID, Name: "Out"}
	require.NoError(t, db.Create(&outsider).Error)

	in := CreateTimeEventsInput{
		ShopID:         shop.ID,
		Title:          "x",
		DiscountRate:   10,
		RecurrenceKind: models.RecurrenceWeekday,
		Weekdays:       []time.Weekday{time.Monday},
		StartTime:      "09:00",
		EndTime:        "12:00",
		MenuIDs:        []uint{menu.ID},
		EmployeeIDs:    []uint{outsider.ID},
	}
	_, err := CreateTimeEvent(db, ownerID, in)
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotBelongShop)
}

func TestFindTimeEventsMatchesWeekday(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	_, err := CreateTimeEvent(db, ownerID, weekdayEventInput(shop, employee, menu, time.Monday))
	require.NoError(t, err)

	monday := nextWeekday(time.Monday)
	tuesday := nextWeekday(time.Tuesday)

	events, err := FindTimeEvents(db, employee.ID, monday)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	events, err = FindTimeEvents(db, employee.ID, tuesday)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFindTimeEventsMatchesExplicitDate(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	target := time.Now().AddDate(0, 0, 3)
	in := weekdayEventInput(shop, employee, menu)
	in.RecurrenceKind = models.RecurrenceDate
	in.Dates = []time.Time{target}
	_, err := CreateTimeEvent(db, ownerID, in)
	require.NoError(t, err)

	events, err := FindTimeEvents(db, employee.ID, target)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	events, err = FindTimeEvents(db, employee.ID, target.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFindClosingEventPrefersEmployeeScope(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, _ := seedShop(t, db)

	date := time.Now().AddDate(0, 0, 2)

	shopWide, err := CreateClosingEvent(db, ownerID, CreateClosingEventInput{
		ShopID:   shop.ID,
		Date:     date,
		IsAllDay: true,
	})
	require.NoError(t, err)

	scoped, err := CreateClosingEvent(db, ownerID, CreateClosingEventInput{
		ShopID:     shop.ID,
		EmployeeID: &employee.ID,
		Date:       date,
		StartTime:  "13:00",
		EndTime:    "15:00",
	})
	require.NoError(t, err)

	found, err := FindClosingEvent(db, shop.ID, employee.ID, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, scoped.ID, found.ID)

	// Another employee only sees the shop-wide closure.
	other := models.Employee{ShopID: shop.ID, Name: "Yun"}
	require.NoError(t, db.Create(&other).Error)

	found, err = FindClosingEvent(db, shop.ID, other.ID, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, shopWide.ID, found.ID)

	// No closure on a different date.
	found, err = FindClosingEvent(db, shop.ID, employee.ID, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCreateClosingEventRequiresWindowUnlessAllDay(t *testing.T) {
	db := setupTestDb(t)
	shop, _, _ := seedShop(t, db)

	_, err := CreateClosingEvent(db, ownerID, CreateClosingEventInput{
		ShopID: shop.ID,
		Date:   time.Now(),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestGetTimeEventsChecksOwnership(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, menu := seedShop(t, db)

	_, err := CreateTimeEvent(db, ownerID, weekdayEventInput(shop, employee, menu, time.Friday))
	require.NoError(t, err)

	_, err = GetTimeEvents(db, shop.ID, employee.ID, ownerID+1, nil)
	assert.ErrorIs(t, err, apperror.ErrShopNotOwned)

	events, err := GetTimeEvents(db, shop.ID, employee.ID, ownerID, nil)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestGetTimeEventsEmptyForEventlessEmployee(t *testing.T) {
	db := setupTestDb(t)
	shop, employee, _ := seedShop(t, db)

	events, err := GetTimeEvents(db, shop.ID, employee.ID, ownerID, nil)
	require.NoError(t, err)
	require.NotNil(t, events, "an empty result must serialize as [], not null")
	assert.Empty(t, events)
}

func nextWeekday(day time.Weekday) time.Time {
	date := time.Now()
	for date.Weekday() != day {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
