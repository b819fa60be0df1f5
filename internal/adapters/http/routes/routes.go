package routes

import (
	"aw-society/internal/adapters/http/handlers"
	"aw-society/internal/adapters/http/middleware"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/config"
	"aw-society/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize services
	notifier := services.NewNotificationService(cfg.SMTP)
	settingsService := services.NewSettingsService(settingsRepo, cfg.Society)
	authService := services.NewAuthService(memberRepo, cfg)
	memberService := services.NewMemberService(memberRepo, txnRepo, notifier, settingsService)
	ledgerService := services.NewLedgerService(ledgerRepo, settingsService, notifier)
	bonusService := services.NewBonusService(memberRepo, txnRepo, notifier)
	statsService := services.NewStatsService(memberRepo, txnRepo)
	txnQueryService := services.NewTransactionQueryService(txnRepo)
	receiptService := services.NewReceiptService(receiptRepo, txnRepo, memberRepo, notifier)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, memberService)
	memberHandler := handlers.NewMemberHandler(memberService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService, bonusService, memberService, txnQueryService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)
	apiV1.Get("/health", healthHandler.HealthCheck)

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)

	// Member routes
	memberRoutes := apiV1.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	memberRoutes.Get("/", middleware.AdminOnly(), memberHandler.List)
	memberRoutes.Get("/:id", middleware.SelfOrAdmin(), memberHandler.Get)
	memberRoutes.Put("/:id", middleware.SelfOrAdmin(), memberHandler.Update)
	memberRoutes.Delete("/:id", middleware.AdminOnly(), memberHandler.Delete)

	// Dashboard routes (admin only)
	statsRoutes := apiV1.Group("/stats")
	statsRoutes.Use(middleware.AuthMiddleware(cfg))
	statsRoutes.Use(middleware.AdminOnly())
	statsRoutes.Get("/", dashboardHandler.Stats)
	statsRoutes.Get("/overview", dashboardHandler.Overview)

	// Transaction routes
	txnRoutes := apiV1.Group("/transactions")
	txnRoutes.Use(middleware.AuthMiddleware(cfg))
	txnRoutes.Post("/", middleware.AdminOnly(), transactionHandler.Create)
	txnRoutes.Get("/", middleware.AdminOnly(), transactionHandler.List)
	txnRoutes.Post("/bonus", middleware.AdminOnly(), transactionHandler.Bonus)
	txnRoutes.Get("/member/:id", middleware.SelfOrAdmin(), transactionHandler.ListByMember)

	// Receipt routes (authenticated)
	receiptRoutes := apiV1.Group("/receipts")
	receiptRoutes.Use(middleware.AuthMiddleware(cfg))
	receiptRoutes.Post("/", receiptHandler.Generate)
	receiptRoutes.Get("/:transactionId", receiptHandler.Download)

	// Settings routes (admin only)
	settingsRoutes := apiV1.Group("/settings")
	settingsRoutes.Use(middleware.AuthMiddleware(cfg))
	settingsRoutes.Use(middleware.AdminOnly())
	settingsRoutes.Get("/", settingsHandler.List)
	settingsRoutes.Put("/", settingsHandler.Update)
}
