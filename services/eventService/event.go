package eventService

import (
	"booksly/apperror"
	"booksly/models"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateTimeEventsInput carries one time event applied to a set of employees.
type CreateTimeEventsInput struct {
	ShopID         uint
	Title          string
	DiscountRate   int
	RecurrenceKind string
	Weekdays       []time.Weekday
	Dates          []time.Time
	StartTime      string // "HH:MM"
	EndTime        string
	MenuIDs        []uint
	EmployeeIDs    []uint
}

func validateRecurrence(in CreateTimeEventsInput) error {
	if in.DiscountRate < 0 || in.DiscountRate > 100 {
		return apperror.ErrDiscountRateInvalid
	}

	switch in.RecurrenceKind {
	case models.RecurrenceWeekday:
		if len(in.Weekdays) == 0 {
			return apperror.ErrEventWeekdaysRequired
		}
		if len(in.Dates) > 0 {
			return apperror.Validation("EVENT_RECURRENCE_MIXED", "Weekday-repeating events must not carry explicit dates!")
		}
	case models.RecurrenceDate:
		if len(in.Dates) == 0 {
			return apperror.ErrEventDatesRequired
		}
		if len(in.Weekdays) > 0 {
			return apperror.Validation("EVENT_RECURRENCE_MIXED", "Date-repeating events must not carry weekdays!")
		}
	case models.RecurrenceNone:
		if len(in.Weekdays) > 0 || len(in.Dates) > 0 {
			return apperror.Validation("EVENT_RECURRENCE_MIXED", "Non-repeating events must not carry weekdays or dates!")
		}
	default:
		return apperror.Validation("EVENT_RECURRENCE_INVALID", "Unknown recurrence kind!")
	}
	return nil
}

// CreateTimeEvent validates the recurrence spec, checks that every employee
// and menu belongs to the shop, and persists the event with its recurrence,
// menu and employee rows in one transaction. Overlapping events for the same
// employee and date are legal; the resolver's precedence disambiguates.
func CreateTimeEvent(db *gorm.DB, ownerID uint, in CreateTimeEventsInput) (*models.TimeEvent, error) {
	if err := validateRecurrence(in); err != nil {
		return nil, err
	}

	if _, err := findOwnedShop(db, in.ShopID, ownerID); err != nil {
		return nil, err
	}

	for _, employeeID := range in.EmployeeIDs {
		if err := validateEmployeeBelongsShop(db, employeeID, in.ShopID); err != nil {
			return nil, err
		}
	}

	var menuCount int64
	if err := db.Model(&models.Menu{}).
		Where("id IN ? AND shop_id = ? AND is_deleted = false", in.MenuIDs, in.ShopID).
		Count(&menuCount).Error; err != nil {
		return nil, err
	}
	if int(menuCount) != len(in.MenuIDs) {
		return nil, apperror.ErrMenuNotFound
	}

	event := models.TimeEvent{
		ShopID:         in.ShopID,
		Title:          in.Title,
		DiscountRate:   in.DiscountRate,
		RecurrenceKind: in.RecurrenceKind,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
	}
	for _, weekday := range in.Weekdays {
		event.Weekdays = append(event.Weekdays, models.TimeEventWeekday{DayOfWeek: weekday})
	}
	for _, date := range in.Dates {
		event.Dates = append(event.Dates, models.TimeEventDate{Date: models.DateOf(date)})
	}
	for _, menuID := range in.MenuIDs {
		event.Menus = append(event.Menus, models.TimeEventMenu{MenuID: menuID})
	}
	for _, employeeID := range in.EmployeeIDs {
		event.Employees = append(event.Employees, models.EmployeeTimeEvent{EmployeeID: employeeID})
	}

	if err := db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindTimeEvents returns the employee's time events active on the given date:
// weekday-repeating events whose weekday set contains the date's weekday, and
// date-repeating events whose date set contains the date itself.
func FindTimeEvents(db *gorm.DB, employeeID uint, date time.Time) ([]models.TimeEvent, error) {
	events, err := findEmployeeTimeEvents(db, employeeID)
	if err != nil {
		return nil, err
	}

	target := models.DateOf(date)
	matched := make([]models.TimeEvent, 0)
	for _, event := range events {
		if matchesDate(event, date.Weekday(), target) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

func matchesDate(event models.TimeEvent, weekday time.Weekday, target datatypes.Date) bool {
	switch event.RecurrenceKind {
	case models.RecurrenceWeekday:
		for _, w := range event.Weekdays {
			if w.DayOfWeek == weekday {
				return true
			}
		}
	case models.RecurrenceDate:
		for _, d := range event.Dates {
			if time.Time(d.Date).Equal(time.Time(target)) {
				return true
			}
		}
	}
	return false
}

func findEmployeeTimeEvents(db *gorm.DB, employeeID uint) ([]models.TimeEvent, error) {
	var eventIDs []uint
	if err := db.Model(&models.EmployeeTimeEvent{}).
		Where("employee_id = ?", employeeID).
		Pluck("time_event_id", &eventIDs).Error; err != nil {
		return nil, err
	}
	if len(eventIDs) == 0 {
		return []models.TimeEvent{}, nil
	}

	events := make([]models.TimeEvent, 0, len(eventIDs))
	if err := db.Preload("Weekdays").Preload("Dates").Preload("Menus").
		Where("id IN ?", eventIDs).
		Order("id").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetTimeEvents is the owner-facing query behind GET /api/events/time-events.
// A nil date returns every event attached to the employee.
func GetTimeEvents(db *gorm.DB, shopID, employeeID, ownerID uint, date *time.Time) ([]models.TimeEvent, error) {
	if _, err := findOwnedShop(db, shopID, ownerID); err != nil {
		return nil, err
	}
	if err := validateEmployeeBelongsShop(db, employeeID, shopID); err != nil {
		return nil, err
	}

	if date == nil {
		return findEmployeeTimeEvents(db, employeeID)
	}
	return FindTimeEvents(db, employeeID, *date)
}

// CreateClosingEventInput scopes a closure to a whole shop (nil EmployeeID)
// or to a single employee.
type CreateClosingEventInput struct {
	ShopID     uint
	EmployeeID *uint
	Date       time.Time
	IsAllDay   bool
	StartTime  string
	EndTime    string
	MenuIDs    []uint
}

func CreateClosingEvent(db *gorm.DB, ownerID uint, in CreateClosingEventInput) (*models.ClosingEvent, error) {
	if _, err := findOwnedShop(db, in.ShopID, ownerID); err != nil {
		return nil, err
	}
	if in.EmployeeID != nil {
		if err := validateEmployeeBelongsShop(db, *in.EmployeeID, in.ShopID); err != nil {
			return nil, err
		}
	}
	if !in.IsAllDay && (in.StartTime == "" || in.EndTime == "") {
		return nil, apperror.Validation("CLOSING_EVENT_WINDOW_REQUIRED", "A time window is required unless the closure is all-day!")
	}

	event := models.ClosingEvent{
		ShopID:     in.ShopID,
		EmployeeID: in.EmployeeID,
		Date:       models.DateOf(in.Date),
		IsAllDay:   in.IsAllDay,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	}
	for _, menuID := range in.MenuIDs {
		event.Menus = append(event.Menus, models.ClosingEventMenu{MenuID: menuID})
	}

	if err := db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindClosingEvent returns the closing event covering the employee on the
// given date, preferring an employee-scoped closure over a shop-wide one.
// A nil result with nil error means no closure.
func FindClosingEvent(db *gorm.DB, shopID, employeeID uint, date time.Time) (*models.ClosingEvent, error) {
	var event models.ClosingEvent
	err := db.Preload("Menus").
		Where("shop_id = ? AND date = ? AND (employee_id IS NULL OR employee_id = ?)", shopID, models.DateOf(date), employeeID).
		Order("employee_id IS NULL").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// GetClosingEvents lists a shop's closing events for its owner.
func GetClosingEvents(db *gorm.DB, shopID, ownerID uint) ([]models.ClosingEvent, error) {
	if _, err := findOwnedShop(db, shopID, ownerID); err != nil {
		return nil, err
	}

	events := make([]models.ClosingEvent, 0)
	if err := db.Preload("Menus").
		Where("shop_id = ?", shopID).
		Order("date, id").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func findOwnedShop(db *gorm.DB, shopID, ownerID uint) (*models.Shop, error) {
	var shop models.Shop
	if err := db.First(&shop, "id = ? AND is_deleted = false", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrShopNotFound
		}
		return nil, err
	}
	if shop.OwnerID != ownerID {
		return nil, apperror.ErrShopNotOwned
	}
	return &shop, nil
}

func validateEmployeeBelongsShop(db *gorm.DB, employeeID, shopID uint) error {
	var employee models.Employee
	if err := db.First(&employee, "id = ? AND is_deleted = false", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrEmployeeNotFound
		}
		return err
	}
	if employee.ShopID != shopID {
		return apperror.ErrEmployeeNotBelongShop
	}
	return nil
}
