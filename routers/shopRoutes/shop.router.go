package shopRoutes

import (
	shopControllers "booksly/controllers/shopController"
	"booksly/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupShopRoutes(app *fiber.App) {
	shopGroup := app.Group("/api/shops", middleware.JWTMiddleware)

	shopGroup.Post("/", shopControllers.CreateShop)
	shopGroup.Post("/:shopId/menus", shopControllers.CreateMenu)
}
