package employeeValidator

import (
	"booksly/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type workScheduleDto struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsDayOff  bool   `json:"isDayOff"`
}

type employeeRequest struct {
	Name            string            `json:"name" validate:"required,min=1"`
	SelfIntro       string            `json:"selfIntro"`
	SchedulingCycle int               `json:"schedulingCycle" validate:"omitempty,min=1"`
	AssignAllMenus  bool              `json:"assignAllMenus"`
	Menus           []uint            `json:"menus"`
	WorkSchedules   []workScheduleDto `json:"workSchedules" validate:"required,len=7,dive"`
}

// Save validates employee create/update payloads. The 7-distinct-weekdays
// invariant is re-checked in the service; this gate only rejects obviously
// malformed bodies early.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqData employeeRequest
		if err := c.BodyParser(&reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
		}

		errors := make(map[string]string)

		if err := validate.Struct(&reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		for _, schedule := range reqData.WorkSchedules {
			if !schedule.IsDayOff && (schedule.StartTime == "" || schedule.EndTime == "") {
				errors["workSchedules"] = "Working days need a start and end time!"
				break
			}
		}

		if !reqData.AssignAllMenus && len(reqData.Menus) == 0 {
			errors["menus"] = "Provide menu ids or set assignAllMenus!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
