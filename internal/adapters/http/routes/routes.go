package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/http/handlers"
	"snp-mealhub/internal/adapters/http/middleware"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/config"
	"snp-mealhub/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	detailRepo := repositories.NewDetailRepository(db)
	contractorRepo := repositories.NewContractorRepository(db)
	supporterRepo := repositories.NewSupporterRepository(db)
	dailyRepo := repositories.NewDailyRecordRepository(db)
	voucherRepo := repositories.NewVoucherRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	detailService := services.NewDetailService(userRepo, detailRepo)
	contractorService := services.NewContractorService(contractorRepo)
	supporterService := services.NewSupporterService(supporterRepo)
	dailyService := services.NewDailyService(dailyRepo, contractorRepo)
	voucherService := services.NewVoucherService(voucherRepo, contractorRepo, detailRepo, dailyRepo)
	fileStore := services.NewDiskFileStore(cfg.Upload.Dir, cfg.Upload.BaseURL)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	detailHandler := handlers.NewDetailHandler(detailService)
	contractorHandler := handlers.NewContractorHandler(contractorService)
	supporterHandler := handlers.NewSupporterHandler(supporterService)
	dailyHandler := handlers.NewDailyHandler(dailyService)
	voucherHandler := handlers.NewVoucherHandler(voucherService)
	uploadHandler := handlers.NewUploadHandler(fileStore)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Anti-forgery token (public, pairs with the csrf cookie)
	api.Get("/csrf-token", authHandler.CSRFToken)

	// Auth routes
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// User management routes (Admin only)
	userRoutes := api.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	setupUserRoutes(userRoutes, userHandler)

	// Officer detail routes (Admin or the officer themself)
	detailRoutes := api.Group("/user-details")
	detailRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDetailRoutes(detailRoutes, detailHandler)

	// Contractor routes
	contractorRoutes := api.Group("/contractors")
	contractorRoutes.Use(middleware.AuthMiddleware(cfg))
	setupContractorRoutes(contractorRoutes, contractorHandler)

	// Supporter routes
	supporterRoutes := api.Group("/supporters")
	supporterRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSupporterRoutes(supporterRoutes, supporterHandler)

	// Daily meal record routes
	dailyRoutes := api.Group("/daily-records")
	dailyRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDailyRoutes(dailyRoutes, dailyHandler)

	// Voucher routes
	voucherRoutes := api.Group("/vouchers")
	voucherRoutes.Use(middleware.AuthMiddleware(cfg))
	setupVoucherRoutes(voucherRoutes, voucherHandler)

	// Upload routes (any authenticated user)
	uploadRoutes := api.Group("/uploads")
	uploadRoutes.Use(middleware.AuthMiddleware(cfg))
	uploadRoutes.Post("/", uploadHandler.UploadFile)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, brute-force limited
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/reset-password", middleware.AuthRateLimiter(), handler.ResetPassword)

	// Account creation is phase one of provisioning (Admin only)
	router.Post("/register", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Register)
}

// setupUserRoutes configures user management routes (Admin only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/pending-details", handler.ListPendingDetails)
	router.Get("/:id", handler.GetUser)
	router.Put("/:id", handler.UpdateUser)
}

// setupDetailRoutes configures officer detail routes. The service layer
// enforces that only an admin or the account owner can touch a record.
func setupDetailRoutes(router fiber.Router, handler *handlers.DetailHandler) {
	router.Get("/active/:role", handler.GetActiveDetail)

	router.Post("/:role", handler.CreateDetail)
	router.Get("/:role", handler.GetDetail)
	router.Put("/:role", handler.UpdateDetail)

	router.Post("/:role/:userId", handler.CreateDetail)
	router.Get("/:role/:userId", handler.GetDetail)
	router.Put("/:role/:userId", handler.UpdateDetail)
}

// setupContractorRoutes configures contractor routes
func setupContractorRoutes(router fiber.Router, handler *handlers.ContractorHandler) {
	router.Get("/", handler.ListContractors)
	router.Get("/:id", handler.GetContractor)

	// Writes are admin-scoped
	router.Post("/", middleware.AdminOnly(), handler.CreateContractor)
	router.Put("/:id", middleware.AdminOnly(), handler.UpdateContractor)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeleteContractor)
}

// setupSupporterRoutes configures supporter routes
func setupSupporterRoutes(router fiber.Router, handler *handlers.SupporterHandler) {
	router.Get("/", handler.ListSupporters)
	router.Get("/:id", handler.GetSupporter)

	router.Post("/", middleware.AdminOnly(), handler.CreateSupporter)
	router.Put("/:id", middleware.AdminOnly(), handler.UpdateSupporter)
	router.Delete("/:id", middleware.AdminOnly(), handler.DeleteSupporter)
}

// setupDailyRoutes configures daily meal record routes
func setupDailyRoutes(router fiber.Router, handler *handlers.DailyHandler) {
	router.Get("/", handler.ListRecords)
	router.Get("/:id", handler.GetRecord)

	// Entry and correction belong to the data entry officer
	router.Post("/", middleware.DataEntryOnly(), handler.CreateRecord)
	router.Put("/:id", middleware.DataEntryOnly(), handler.UpdateRecord)
}

// setupVoucherRoutes configures voucher routes
func setupVoucherRoutes(router fiber.Router, handler *handlers.VoucherHandler) {
	router.Get("/", handler.ListVouchers)
	router.Get("/:id", handler.GetVoucher)

	// Issue by data entry, decide by verification
	router.Post("/", middleware.DataEntryOnly(), handler.IssueVoucher)
	router.Put("/:id/approve", middleware.VerificationOnly(), handler.ApproveVoucher)
	router.Put("/:id/reject", middleware.VerificationOnly(), handler.RejectVoucher)
}
