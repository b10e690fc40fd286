package authController

import (
	"booksly/config"
	"booksly/database"
	"booksly/middleware"
	"booksly/models"
	"booksly/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	var reqData models.ShopOwner

	if err := c.BodyParser(&reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.ShopOwner{}).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"errorCode": "EMAIL_DUPLICATE",
			"message":   "Email is already registered!",
		})
	}

	// Check if mobile already exists
	if err := db.Where("mobile = ?", reqData.Mobile).First(&models.ShopOwner{}).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"errorCode": "MOBILE_DUPLICATE",
			"message":   "Mobile number is already registered!",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	newOwner := models.ShopOwner{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newOwner).Error; err != nil {
		log.Printf("Error saving owner to database: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	newOwner.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, newOwner)
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	db := database.Database.Db

	var owner models.ShopOwner
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&owner).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errorCode": "INVALID_CREDENTIALS",
			"message":   "Invalid email or password!",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(reqData.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errorCode": "INVALID_CREDENTIALS",
			"message":   "Invalid email or password!",
		})
	}

	token, err := middleware.GenerateJWT(owner.ID, owner.Name, owner.Email, owner.Mobile)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	lastLogin := time.Now()
	owner.LastLogin = &lastLogin
	db.Save(&owner)

	owner.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"owner": owner,
	})
}

// SendPhoneCode creates a verification session and hands the code to the SMS
// gateway. The gateway call is fire-and-forget; the session row is the source
// of truth.
func SendPhoneCode(c *fiber.Ctx) error {
	reqData := new(struct {
		Mobile string `json:"mobile"`
	})

	if err := c.BodyParser(reqData); err != nil || reqData.Mobile == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"mobile": "Mobile number is required!"})
	}

	verification := models.PhoneVerification{
		Mobile:    reqData.Mobile,
		Code:      utils.GenerateVerificationCode(),
		SessionID: uuid.NewString(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	if err := database.Database.Db.Create(&verification).Error; err != nil {
		log.Printf("Error saving phone verification: %v", err)
		return middleware.ErrorResponse(c, err)
	}

	go func(mobile, code string) {
		if err := utils.SendVerificationSMS(mobile, code); err != nil {
			log.Printf("Error sending verification SMS: %v", err)
		}
	}(verification.Mobile, verification.Code)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"sessionId": verification.SessionID,
		"expiresAt": verification.ExpiresAt,
	})
}

func VerifyPhoneCode(c *fiber.Ctx) error {
	reqData := new(struct {
		SessionID string `json:"sessionId"`
		Code      string `json:"code"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"body": "Invalid request body!"})
	}

	db := database.Database.Db

	var verification models.PhoneVerification
	if err := db.Where("session_id = ?", reqData.SessionID).First(&verification).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"errorCode": "VERIFICATION_NOT_FOUND",
			"message":   "Verification session not found!",
		})
	}

	if verification.IsUsed || time.Now().After(verification.ExpiresAt) || verification.Code != reqData.Code {
		return middleware.ValidationErrorResponse(c, map[string]string{"code": "Invalid or expired verification code!"})
	}

	verification.IsUsed = true
	if err := db.Save(&verification).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Mark the owner verified when the mobile matches an account.
	db.Model(&models.ShopOwner{}).
		Where("mobile = ?", verification.Mobile).
		Update("is_mobile_verified", true)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"verified": true})
}
