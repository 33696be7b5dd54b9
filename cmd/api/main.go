package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/config"
	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/infrastructure/database"
	"github.com/motorline/dealerdesk-api/internal/infrastructure/repository"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/handler"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/routes"
	"github.com/motorline/dealerdesk-api/pkg/printer"
	"github.com/motorline/dealerdesk-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
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

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	paymentModeRepo := repository.NewPaymentModeRepository(db)
	typeOfPaymentRepo := repository.NewTypeOfPaymentRepository(db)
	collectionTypeRepo := repository.NewCollectionTypeRepository(db)
	vehicleModelRepo := repository.NewVehicleModelRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	serviceCollectionRepo := repository.NewServiceCollectionRepository(db)
	menuPermissionRepo := repository.NewMenuPermissionRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo, collectionRepo, serviceCollectionRepo)
	referenceService := service.NewReferenceService(
		paymentModeRepo, typeOfPaymentRepo, collectionTypeRepo, vehicleModelRepo,
		collectionRepo, serviceCollectionRepo,
	)
	collectionService := service.NewCollectionService(collectionRepo, customerRepo, paymentModeRepo)
	serviceCollectionService := service.NewServiceCollectionService(serviceCollectionRepo, customerRepo, paymentModeRepo)
	dashboardService := service.NewDashboardService(collectionRepo)
	permissionService := service.NewPermissionService(menuPermissionRepo)
	enquiryService := service.NewEnquiryService(enquiryRepo, vehicleModelRepo)
	exportService := service.NewExportService(collectionRepo, serviceCollectionRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, entity.ReceiptHeader{
		DealerName: cfg.Dealer.Name,
		Address:    cfg.Dealer.Address,
		Phone:      cfg.Dealer.Phone,
	}, collectionRepo, serviceCollectionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:              handler.NewAuthHandler(authService),
		User:              handler.NewUserHandler(userService),
		Customer:          handler.NewCustomerHandler(customerService),
		Reference:         handler.NewReferenceHandler(referenceService),
		Collection:        handler.NewCollectionHandler(collectionService),
		ServiceCollection: handler.NewServiceCollectionHandler(serviceCollectionService),
		Dashboard:         handler.NewDashboardHandler(dashboardService),
		Permission:        handler.NewPermissionHandler(permissionService),
		Enquiry:           handler.NewEnquiryHandler(enquiryService),
		Export:            handler.NewExportHandler(exportService),
		Printer:           handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:        jwtManager,
		Cfg:               cfg,
		UserRepo:          userRepo,
		IdempotencyRepo:   idempotencyRepo,
		PermissionService: permissionService,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
