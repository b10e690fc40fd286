package middleware

import (
	"booksly/apperror"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse wraps a successful payload in the uniform {data, status}
// envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": statusCode,
		"data":   data,
	})
}

// ErrorResponse surfaces an application error as {errorCode, message} with the
// HTTP status derived from the error kind. Unknown errors become a 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{
			"errorCode": appErr.Code,
			"message":   appErr.Message,
		})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"errorCode": "INTERNAL_SERVER_ERROR",
		"message":   "Failed to process your request!",
	})
}

// ValidationErrorResponse reports field-level validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errorCode": "VALIDATION_FAILED",
		"message":   "Validation failed!",
		"errors":    errs,
	})
}
