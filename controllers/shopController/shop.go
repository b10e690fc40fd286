package shopController

import (
	"booksly/apperror"
	"booksly/database"
	"booksly/middleware"
	"booksly/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateShop(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	var reqData models.Shop
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	shop := models.Shop{
		OwnerID: ownerID,
		Name:    reqData.Name,
		Phone:   reqData.Phone,
		Address: reqData.Address,
	}

	if err := database.Database.Db.Create(&shop).Error; err != nil {
		log.Printf("Error creating shop: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, shop)
}

func CreateMenu(c *fiber.Ctx) error {
	ownerID := c.Locals("ownerId").(uint)

	shopID, err := c.ParamsInt("shopId")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"shopId": "Invalid shop id!"})
	}

	var reqData models.Menu
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	db := database.Database.Db

	var shop models.Shop
	if err := db.First(&shop, "id = ? AND is_deleted = false", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, apperror.ErrShopNotFound)
		}
		return middleware.ErrorResponse(c, err)
	}
	if shop.OwnerID != ownerID {
		return middleware.ErrorResponse(c, apperror.ErrShopNotOwned)
	}

	menu := models.Menu{
		ShopID:      shop.ID,
		MenuName:    reqData.MenuName,
		Price:       reqData.Price,
		Description: reqData.Description,
	}

	if err := db.Create(&menu).Error; err != nil {
		log.Printf("Error creating menu: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, menu)
}
