package reservationRoutes

import (
	reservationControllers "booksly/controllers/reservationController"
	"booksly/middleware"
	reservationValidators "booksly/validators/reservationValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupReservationRoutes(app *fiber.App) {
	reservationGroup := app.Group("/api/shops/:shopId/reservation-settings", middleware.JWTMiddleware)

	reservationGroup.Put("/", reservationValidators.UpsertSetting(), reservationControllers.UpsertSetting)
}
