package main

import (
	"booksly/config"
	"booksly/database"
	authRoutes "booksly/routers/authRoutes"
	employeeRoutes "booksly/routers/employeeRoutes"
	eventRoutes "booksly/routers/eventRoutes"
	reservationRoutes "booksly/routers/reservationRoutes"
	shopRoutes "booksly/routers/shopRoutes"
	"booksly/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	materializer := utils.StartScheduleMaterializer()
	defer materializer.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	shopRoutes.SetupShopRoutes(app)
	employeeRoutes.SetupEmployeeRoutes(app)
	eventRoutes.SetupEventRoutes(app)
	reservationRoutes.SetupReservationRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
