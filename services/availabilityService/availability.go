package availabilityService

import (
	"booksly/apperror"
	"booksly/models"
	"errors"

	"gorm.io/gorm"
)

// SlotStatus is the effective state of one reservation-schedule slot.
type SlotStatus string

const (
	StatusClosed       SlotStatus = "CLOSED"
	StatusClosingEvent SlotStatus = "CLOSING_EVENT"
	StatusTimeEvent    SlotStatus = "TIME_EVENT"
	StatusNormal       SlotStatus = "NORMAL"
)

// ResolvedSlot is the resolver's answer for one slot: its status and the menus
// bookable in it. Eligible menus are always a subset of the employee's base
// menu set; an empty set means zero availability, not an error.
type ResolvedSlot struct {
	Status         SlotStatus    `json:"status"`
	Menus          []models.Menu `json:"menus"`
	TimeEventID    *uint         `json:"timeEventId,omitempty"`
	ClosingEventID *uint         `json:"closingEventId,omitempty"`
}

// ResolveSlot applies the fixed precedence: closed day beats everything, then
// closing event, then time event, then the normal schedule.
func ResolveSlot(db *gorm.DB, shopID, employeeID, scheduleID uint) (*ResolvedSlot, error) {
	employee, slot, err := loadEmployeeSlot(db, shopID, employeeID, scheduleID)
	if err != nil {
		return nil, err
	}

	if slot.IsClosed {
		return &ResolvedSlot{Status: StatusClosed, Menus: []models.Menu{}}, nil
	}

	if slot.IsClosingEvent {
		// The flag alone decides the status. A missing event link means the
		// menu set cannot be resolved, so the slot offers nothing.
		if slot.ClosingEventID == nil {
			return &ResolvedSlot{Status: StatusClosingEvent, Menus: []models.Menu{}}, nil
		}
		menus, err := closingEventMenus(db, employee.ID, *slot.ClosingEventID)
		if err != nil {
			return nil, err
		}
		return &ResolvedSlot{Status: StatusClosingEvent, Menus: menus, ClosingEventID: slot.ClosingEventID}, nil
	}

	if slot.TimeEventID != nil {
		menus, err := timeEventMenus(db, employee.ID, *slot.TimeEventID)
		if err != nil {
			return nil, err
		}
		return &ResolvedSlot{Status: StatusTimeEvent, Menus: menus, TimeEventID: slot.TimeEventID}, nil
	}

	menus, err := EmployeeMenus(db, employee.ID)
	if err != nil {
		return nil, err
	}
	return &ResolvedSlot{Status: StatusNormal, Menus: menus}, nil
}

// HasEvent reports whether the slot is bookable under an event: not closed and
// carrying either a closing-event or time-event link.
func HasEvent(db *gorm.DB, shopID, employeeID, scheduleID uint) (bool, error) {
	_, slot, err := loadEmployeeSlot(db, shopID, employeeID, scheduleID)
	if err != nil {
		return false, err
	}
	return !slot.IsClosed && (slot.IsClosingEvent || slot.TimeEventID != nil), nil
}

func loadEmployeeSlot(db *gorm.DB, shopID, employeeID, scheduleID uint) (*models.Employee, *models.ReservationSchedule, error) {
	var employee models.Employee
	if err := db.First(&employee, "id = ? AND is_deleted = false", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperror.ErrEmployeeNotFound
		}
		return nil, nil, err
	}
	if employee.ShopID != shopID {
		return nil, nil, apperror.ErrEmployeeNotBelongShop
	}

	var slot models.ReservationSchedule
	if err := db.First(&slot, "id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperror.ErrReservationScheduleNotFound
		}
		return nil, nil, err
	}
	if slot.EmployeeID != employee.ID {
		return nil, nil, apperror.ErrEmployeeNotOwnSchedule
	}

	return &employee, &slot, nil
}

// EmployeeMenus returns the employee's base assigned menu set.
func EmployeeMenus(db *gorm.DB, employeeID uint) ([]models.Menu, error) {
	return menusIn(db, employeeID, nil)
}

func timeEventMenus(db *gorm.DB, employeeID, eventID uint) ([]models.Menu, error) {
	var menuIDs []uint
	if err := db.Model(&models.TimeEventMenu{}).
		Where("time_event_id = ?", eventID).
		Pluck("menu_id", &menuIDs).Error; err != nil {
		return nil, err
	}
	if len(menuIDs) == 0 {
		return []models.Menu{}, nil
	}
	return menusIn(db, employeeID, menuIDs)
}

func closingEventMenus(db *gorm.DB, employeeID, eventID uint) ([]models.Menu, error) {
	var menuIDs []uint
	if err := db.Model(&models.ClosingEventMenu{}).
		Where("closing_event_id = ?", eventID).
		Pluck("menu_id", &menuIDs).Error; err != nil {
		return nil, err
	}
	if len(menuIDs) == 0 {
		return []models.Menu{}, nil
	}
	return menusIn(db, employeeID, menuIDs)
}

// menusIn intersects the employee's assigned menus with the given menu ids.
// A nil filter keeps the whole base set; an event can only restrict it.
func menusIn(db *gorm.DB, employeeID uint, menuIDs []uint) ([]models.Menu, error) {
	query := db.Model(&models.Menu{}).
		Joins("JOIN employee_menus ON employee_menus.menu_id = menus.id AND employee_menus.deleted_at IS NULL").
		Where("employee_menus.employee_id = ? AND menus.is_deleted = false", employeeID)
	if menuIDs != nil {
		query = query.Where("menus.id IN ?", menuIDs)
	}

	menus := make([]models.Menu, 0)
	if err := query.Order("menus.id").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}
