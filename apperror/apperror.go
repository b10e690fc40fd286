package apperror

import "github.com/gofiber/fiber/v2"

// Kind classifies an application error; the HTTP status is derived from it.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindForbidden
	KindConflict
	KindInternal
)

type AppError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindValidation:
		return fiber.StatusBadRequest
	case KindForbidden:
		return fiber.StatusForbidden
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func NotFound(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func Validation(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func Forbidden(code, message string) *AppError {
	return &AppError{Kind: KindForbidden, Code: code, Message: message}
}

func Conflict(code, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

var (
	ErrShopNotFound = NotFound("SHOP_NOT_FOUND", "Shop not found!")

	ErrEmployeeNotFound = NotFound("EMPLOYEE_NOT_FOUND", "Employee not found!")

	ErrMenuNotFound = NotFound("MENU_NOT_FOUND", "Menu not found!")

	ErrReservationScheduleNotFound = NotFound("RESERVATION_SCHEDULE_NOT_FOUND", "Reservation schedule not found!")

	ErrWorkScheduleNotFound = NotFound("WORK_SCHEDULE_NOT_FOUND", "Work schedule not found!")

	ErrWorkScheduleMustSevenDays = Validation("WORK_SCHEDULE_MUST_SEVEN_DAYS", "Work schedules must cover all 7 days of the week!")

	ErrEventWeekdaysRequired = Validation("EVENT_WEEKDAYS_REQUIRED", "Weekday-repeating events must specify at least one weekday!")

	ErrEventDatesRequired = Validation("EVENT_DATES_REQUIRED", "Date-repeating events must specify at least one date!")

	ErrDiscountRateInvalid = Validation("DISCOUNT_RATE_INVALID", "Discount rate must be between 0 and 100!")

	ErrMissingLeadTime = Validation("TIME_SETTING_BAD_REQUEST", "Registration lead time (minutes or hours) is required!")

	ErrMissingCapacity = Validation("AUTO_SETTING_BAD_REQUEST", "Max capacity is required when auto-accept is enabled!")

	ErrEmployeeNameDuplicate = Conflict("EMPLOYEE_NAME_DUPLICATE", "An employee with this name already exists!")

	ErrReservationSettingConflict = Conflict("RESERVATION_SETTING_CONFLICT", "A reservation setting for this shop was created concurrently!")

	ErrEmployeeNotBelongShop = Forbidden("EMPLOYEE_NOT_BELONG_SHOP", "Employee does not belong to this shop!")

	ErrEmployeeNotOwnSchedule = Forbidden("EMPLOYEE_NOT_OWN_RESERVATION_SCHEDULE", "Reservation schedule does not belong to this employee!")

	ErrShopNotOwned = Forbidden("SHOP_NOT_OWNED", "Shop does not belong to the requesting owner!")
)
