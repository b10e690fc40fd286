package calendarService

import (
	"booksly/apperror"
	"booksly/models"
	"errors"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Calendar partitions an employee's coming scheduling cycle into workdays and
// holidays.
type Calendar struct {
	EmployeeID uint        `json:"employeeId"`
	Workdays   []time.Time `json:"workdays"`
	Holidays   []time.Time `json:"holidays"`
}

// BuildCalendar iterates cycleLength consecutive days starting today and
// sorts each date by the employee's weekly entry for that weekday. Fails when
// the stored schedule is not a complete week.
func BuildCalendar(db *gorm.DB, employee *models.Employee, cycleLength int) (*Calendar, error) {
	var schedules []models.WorkSchedule
	if err := db.Where("employee_id = ?", employee.ID).Find(&schedules).Error; err != nil {
		return nil, err
	}
	if len(schedules) < 7 {
		return nil, apperror.ErrWorkScheduleMustSevenDays
	}

	dayOff := make(map[time.Weekday]bool, 7)
	for _, schedule := range schedules {
		dayOff[schedule.DayOfWeek] = schedule.IsDayOff
	}

	calendar := &Calendar{
		EmployeeID: employee.ID,
		Workdays:   make([]time.Time, 0, cycleLength),
		Holidays:   make([]time.Time, 0),
	}

	date := now.BeginningOfDay()
	last := date.AddDate(0, 0, cycleLength-1)
	for !date.After(last) {
		if dayOff[date.Weekday()] {
			calendar.Holidays = append(calendar.Holidays, date)
		} else {
			calendar.Workdays = append(calendar.Workdays, date)
		}
		date = date.AddDate(0, 0, 1)
	}

	return calendar, nil
}

// GetCalendarDates resolves the shop/employee pair, checks ownership of the
// employee by the shop, and builds the calendar over the employee's configured
// scheduling cycle.
func GetCalendarDates(db *gorm.DB, shopID, employeeID uint) (*Calendar, error) {
	var shop models.Shop
	if err := db.First(&shop, "id = ? AND is_deleted = false", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrShopNotFound
		}
		return nil, err
	}

	var employee models.Employee
	if err := db.First(&employee, "id = ? AND is_deleted = false", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrEmployeeNotFound
		}
		return nil, err
	}
	if employee.ShopID != shopID {
		return nil, apperror.ErrEmployeeNotBelongShop
	}

	cycle := employee.SchedulingCycle
	if cycle < 1 {
		cycle = 1
	}
	return BuildCalendar(db, &employee, cycle)
}
