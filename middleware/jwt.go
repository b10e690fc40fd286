package middleware

import (
	"booksly/config"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for a shop owner
func GenerateJWT(ownerID uint, name, email, mobile string) (string, error) {
	claims := jwt.MapClaims{
		"ownerId": ownerID,
		"name":    name,
		"email":   email,
		"mobile":  mobile,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid JWT token in the request and stores the
// owner id in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errorCode": "UNAUTHORIZED",
			"message":   "Missing or invalid Authorization header",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errorCode": "UNAUTHORIZED",
			"message":   "Invalid Authorization header format",
		})
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errorCode": "UNAUTHORIZED",
			"message":   "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["ownerId"] == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"errorCode": "UNAUTHORIZED",
			"message":   "Invalid token payload",
		})
	}

	ownerID := claims["ownerId"].(float64) // JWT claims decode numbers as float64
	c.Locals("ownerId", uint(ownerID))

	return c.Next()
}
