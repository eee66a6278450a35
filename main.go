package main

import (
	"log"

	"sintnew/config"
	"sintnew/db"
	"sintnew/routes"
	"sintnew/uploader"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db.InitDatabase(cfg.DatabasePath)
	if err := db.Seed(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Remote image store client
	images, err := uploader.NewCloudinaryService(&cfg.Cloudinary)
	if err != nil {
		log.Fatal("Failed to create image service:", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app, &routes.Deps{
		Config:   cfg,
		Images:   images,
		Sessions: session.New(),
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
