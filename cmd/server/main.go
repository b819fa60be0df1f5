package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"aw-society/internal/adapters/http/middleware"
	"aw-society/internal/adapters/http/routes"
	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/config"
	"aw-society/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "aw-society/docs" // Swagger docs
)

// @title AW SOCIETY API
// @version 1.0
// @description Society fund management API: members, collections, loans, bonuses and receipts.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@awsociety.in

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.awsociety.in
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Seed default settings and the admin account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("Warning: failed to seed defaults: %v", err)
	}

	// Start the daily loan reminder job
	memberRepo := repositories.NewMemberRepository(db)
	notifier := services.NewNotificationService(cfg.SMTP)
	reminderService := services.NewReminderService(memberRepo, notifier)
	if err := reminderService.Start(); err != nil {
		log.Fatalf("Failed to start reminder job: %v", err)
	}
	defer reminderService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AW SOCIETY API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
