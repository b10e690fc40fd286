package authRoutes

import (
	authControllers "booksly/controllers/authController"
	authValidators "booksly/validators/authValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/phone/send", authValidators.SendPhoneCode(), authControllers.SendPhoneCode)
	authGroup.Post("/phone/verify", authControllers.VerifyPhoneCode)
}
