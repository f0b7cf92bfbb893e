package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"snp-mealhub/internal/adapters/http/middleware"
	"snp-mealhub/internal/adapters/http/routes"
	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/config"
	"snp-mealhub/internal/core/services"
	"snp-mealhub/internal/logger"

	_ "snp-mealhub/docs" // Swagger docs
)

// @title School Nutrition Program API
// @version 1.0
// @description Backend for the national school meal program: accounts, officers, contractors, daily meal records and payment vouchers.

// @contact.name API Support
// @contact.email support@nutrition.gov.lk

// @host meals.nutrition.gov.lk
// @BasePath /api
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.IsDev())

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logrus.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		logrus.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	logrus.Info("✅ Database migration completed")

	// Seed default accounts and sample data on an empty database
	if err := config.NewSeeder(db).Run(); err != nil {
		logrus.Warnf("⚠️ Failed to seed initial data: %v", err)
	}

	// Daily sweep for officer accounts stuck without details (08:30)
	cronService := services.NewCronService(repositories.NewUserRepository(db))
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "School Nutrition Program API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Uploaded files are served directly off disk
	app.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	logrus.Infof("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("❌ Error during shutdown: %v", err)
	}
	logrus.Info("✅ Server stopped gracefully")
}
