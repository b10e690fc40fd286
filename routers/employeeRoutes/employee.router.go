package employeeRoutes

import (
	employeeControllers "booksly/controllers/employeeController"
	"booksly/middleware"
	employeeValidators "booksly/validators/employeeValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App) {
	employeeGroup := app.Group("/api/employees", middleware.JWTMiddleware)

	employeeGroup.Post("/:shopId", employeeValidators.Save(), employeeControllers.CreateEmployee)
	employeeGroup.Put("/:employeeId", employeeValidators.Save(), employeeControllers.UpdateEmployee)
	employeeGroup.Delete("/:employeeId", employeeControllers.DeleteEmployee)

	// Calendar and slot resolution live under the shop scope.
	slotGroup := app.Group("/api/shops/:shopId/employees/:employeeId", middleware.JWTMiddleware)
	slotGroup.Get("/calendar", employeeControllers.GetCalendar)
	slotGroup.Get("/reservation-schedules/:scheduleId/event-status", employeeControllers.CheckEventStatus)
	slotGroup.Get("/reservation-schedules/:scheduleId/event-menus", employeeControllers.GetEventMenus)
}
