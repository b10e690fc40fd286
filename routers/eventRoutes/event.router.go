package eventRoutes

import (
	eventControllers "booksly/controllers/eventController"
	"booksly/middleware"
	eventValidators "booksly/validators/eventValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App) {
	eventGroup := app.Group("/api/events", middleware.JWTMiddleware)

	eventGroup.Post("/time-events", eventValidators.CreateTimeEvent(), eventControllers.CreateTimeEvent)
	eventGroup.Get("/time-events", eventControllers.GetTimeEvents)
	eventGroup.Post("/closing-events", eventValidators.CreateClosingEvent(), eventControllers.CreateClosingEvent)
	eventGroup.Get("/closing-events", eventControllers.GetClosingEvents)
}
