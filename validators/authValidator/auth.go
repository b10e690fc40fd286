package authValidator

import (
	"booksly/middleware"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var mobilePattern = regexp.MustCompile(`^\d{10,15}$`)

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name" validate:"required,min=2"`
			Email    string `json:"email" validate:"required,email"`
			Mobile   string `json:"mobile" validate:"required"`
			Password string `json:"password" validate:"required,min=8"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
		}

		if reqData.Mobile != "" && !mobilePattern.MatchString(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"credentials": "Email and password are required!"})
		}

		return c.Next()
	}
}

// SendPhoneCode validator middleware
func SendPhoneCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Mobile string `json:"mobile"`
		})
		if err := c.BodyParser(reqData); err != nil || !mobilePattern.MatchString(reqData.Mobile) {
			return middleware.ValidationErrorResponse(c, map[string]string{"mobile": "Invalid mobile number!"})
		}
		return c.Next()
	}
}
