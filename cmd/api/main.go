package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vijaya/autospares-api/internal/application/service"
	"github.com/vijaya/autospares-api/internal/config"
	"github.com/vijaya/autospares-api/internal/infrastructure/database"
	"github.com/vijaya/autospares-api/internal/infrastructure/repository"
	"github.com/vijaya/autospares-api/internal/presentation/http/handler"
	"github.com/vijaya/autospares-api/internal/presentation/http/routes"
	"github.com/vijaya/autospares-api/pkg/email"
	"github.com/vijaya/autospares-api/pkg/storage"
	"github.com/vijaya/autospares-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize file storage
	store, err := storage.NewStore(cfg.Storage.Path, cfg.Storage.PublicURL, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	partRepo := repository.NewPartRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	udhaariRepo := repository.NewUdhaariRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	partService := service.NewPartService(partRepo)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(orderRepo, partRepo, customerRepo)
	invoiceService := service.NewInvoiceService(emailService)
	udhaariService := service.NewUdhaariService(udhaariRepo, customerRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(partRepo, customerRepo, udhaariRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Part:      handler.NewPartHandler(partService, store),
		Customer:  handler.NewCustomerHandler(customerService),
		Order:     handler.NewOrderHandler(orderService, invoiceService, settingsService),
		Udhaari:   handler.NewUdhaariHandler(udhaariService),
		Settings:  handler.NewSettingsHandler(settingsService, store),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
