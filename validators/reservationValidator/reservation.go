package reservationValidator

import (
	"booksly/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpsertSetting checks the reservation-setting body shape. The cross-field
// rules (lead time, capacity) live in the service where they map to typed
// error codes.
func UpsertSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RegisterMin *int `json:"registerMin"`
			RegisterHr  *int `json:"registerHr"`
			IsAuto      bool `json:"isAuto"`
			MaxCapacity *int `json:"maxCapacity"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
		}

		errors := make(map[string]string)
		if reqData.RegisterMin != nil && *reqData.RegisterMin < 0 {
			errors["registerMin"] = "Lead time minutes must not be negative!"
		}
		if reqData.RegisterHr != nil && *reqData.RegisterHr < 0 {
			errors["registerHr"] = "Lead time hours must not be negative!"
		}
		if reqData.MaxCapacity != nil && *reqData.MaxCapacity < 1 {
			errors["maxCapacity"] = "Max capacity must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
