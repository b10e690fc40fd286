package reservationController

import (
	"booksly/database"
	"booksly/middleware"
	"booksly/services/reservationService"

	"github.com/gofiber/fiber/v2"
)

// UpsertSetting configures the shop's reservation policy. One setting per
// shop; repeat calls update the existing row.
func UpsertSetting(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	shopID, err := c.ParamsInt("shopId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"shopId": "Invalid shop id!"})
	}

	var reqData reservationService.UpsertSettingInput
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	setting, err := reservationService.UpsertSetting(database.Database.Db, uint(shopID), ownerID, reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, setting)
}
