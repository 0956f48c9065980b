// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"sahay/internal/handlers"
	"sahay/internal/middleware"
	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/services/auth"
	"sahay/internal/services/contact"
	"sahay/internal/services/fraud"
	"sahay/internal/services/transfer"
	"sahay/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	txnRepo := repositories.NewTransactionRepository(db)
	contactRepo := repositories.NewTrustedContactRepository(db)

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	fraudService := fraud.NewService(txnRepo, userRepo, repositories.CacheService, fraud.ConfigFromEnv())
	transferService := transfer.NewService(txnRepo, userRepo, fraudService, repositories.CacheService)
	contactService := contact.NewService(contactRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	transferHandler := handlers.NewTransferHandler(transferService, userService)
	fraudHandler := handlers.NewFraudHandler(fraudService)
	contactHandler := handlers.NewContactHandler(contactService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Sahay API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/register", userHandler.Register)
	api.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)
	protected.Post("/change-password",
		middleware.HasPermission(models.PermissionChangePassword),
		authHandler.ChangePassword)

	protected.Get("/me", userHandler.GetProfile)
	protected.Get("/settings/accessibility", userHandler.GetSettings)
	protected.Put("/settings/accessibility",
		middleware.HasPermission(models.PermissionSettingsWrite),
		userHandler.UpdateSettings)

	transfers := protected.Group("/transfers")
	transfers.Post("/",
		middleware.HasPermission(models.PermissionTransferWrite),
		transferHandler.SendMoney)
	transfers.Get("/", middleware.HasPermission(models.PermissionTransferRead), transferHandler.List)
	transfers.Get("/stats", middleware.HasPermission(models.PermissionTransferRead), transferHandler.Stats)
	transfers.Get("/:id", middleware.HasPermission(models.PermissionTransferRead), transferHandler.Get)
	transfers.Post("/:id/confirm",
		middleware.HasPermission(models.PermissionTransferWrite),
		transferHandler.Confirm)
	transfers.Post("/:id/cancel",
		middleware.HasPermission(models.PermissionTransferWrite),
		transferHandler.Cancel)

	protected.Get("/fraud/stats",
		middleware.HasPermission(models.PermissionFraudRead),
		fraudHandler.GetStats)

	contacts := protected.Group("/contacts")
	contacts.Post("/", middleware.HasPermission(models.PermissionContactWrite), contactHandler.Add)
	contacts.Get("/", middleware.HasPermission(models.PermissionContactRead), contactHandler.List)
	contacts.Put("/:upiId", middleware.HasPermission(models.PermissionContactWrite), contactHandler.Update)
	contacts.Delete("/:upiId", middleware.HasPermission(models.PermissionContactWrite), contactHandler.Remove)

	// Admin routes
	admin := protected.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Put("/users/:id/status", userHandler.UpdateAccountStatus)
}
