package eventValidator

import (
	"booksly/middleware"
	"booksly/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type timeEventRequest struct {
	ShopID         uint     `json:"shopId" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	DiscountRate   int      `json:"discountRate" validate:"min=0,max=100"`
	RecurrenceKind string   `json:"recurrenceKind" validate:"required"`
	Weekdays       []int    `json:"weekdays" validate:"dive,min=0,max=6"`
	Dates          []string `json:"dates"`
	StartTime      string   `json:"startTime" validate:"required"`
	EndTime        string   `json:"endTime" validate:"required"`
	Employees      []uint   `json:"employees" validate:"required,min=1"`
}

// CreateTimeEvent rejects malformed recurrence specs before the service runs.
func CreateTimeEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqData timeEventRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
		}

		errors := make(map[string]string)

		if err := validate.Struct(&reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		switch reqData.RecurrenceKind {
		case models.RecurrenceWeekday:
			if len(reqData.Weekdays) == 0 {
				errors["weekdays"] = "Weekday-repeating events need at least one weekday!"
			}
		case models.RecurrenceDate:
			if len(reqData.Dates) == 0 {
				errors["dates"] = "Date-repeating events need at least one date!"
			}
		case models.RecurrenceNone:
		default:
			errors["recurrenceKind"] = "Recurrence kind must be NONE, WEEKDAY or DATE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

type closingEventRequest struct {
	ShopID uint   `json:"shopId" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

// CreateClosingEvent checks the minimal closing-event shape.
func CreateClosingEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqData closingEventRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
		}

		if err := validate.Struct(&reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Shop id and date are required!"})
		}

		return c.Next()
	}
}
