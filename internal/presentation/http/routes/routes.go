package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/config"
	domainRepo "github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/handler"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/middleware"
	"github.com/motorline/dealerdesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth              *handler.AuthHandler
	User              *handler.UserHandler
	Customer          *handler.CustomerHandler
	Reference         *handler.ReferenceHandler
	Collection        *handler.CollectionHandler
	ServiceCollection *handler.ServiceCollectionHandler
	Dashboard         *handler.DashboardHandler
	Permission        *handler.PermissionHandler
	Enquiry           *handler.EnquiryHandler
	Export            *handler.ExportHandler
	Printer           *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager        *utils.JWTManager
	Cfg               *config.Config
	UserRepo          domainRepo.UserRepository
	IdempotencyRepo   domainRepo.IdempotencyRepository
	PermissionService *service.PermissionService
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.UserRepo))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	perms := deps.PermissionService

	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)
	protected.GET("/permissions/me", h.Permission.Mine)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission(perms, "dashboard"))
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
	}

	// Customers
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission(perms, "master.customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/by-phone/:phone", h.Customer.GetByPhone)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Reference registries
	references := protected.Group("/references")
	references.Use(middleware.RequirePermission(perms, "master.references"))
	{
		modes := references.Group("/payment-modes")
		{
			modes.GET("", h.Reference.ListPaymentModes)
			modes.POST("", h.Reference.CreatePaymentMode)
			modes.PUT("/:id", h.Reference.UpdatePaymentMode)
			modes.DELETE("/:id", h.Reference.DeletePaymentMode)
		}

		types := references.Group("/types-of-payment")
		{
			types.GET("", h.Reference.ListTypesOfPayment)
			types.POST("", h.Reference.CreateTypeOfPayment)
			types.PUT("/:id", h.Reference.UpdateTypeOfPayment)
			types.DELETE("/:id", h.Reference.DeleteTypeOfPayment)
		}

		collectionTypes := references.Group("/collection-types")
		{
			collectionTypes.GET("", h.Reference.ListCollectionTypes)
			collectionTypes.POST("", h.Reference.CreateCollectionType)
			collectionTypes.PUT("/:id", h.Reference.UpdateCollectionType)
			collectionTypes.DELETE("/:id", h.Reference.DeleteCollectionType)
		}

		models := references.Group("/vehicle-models")
		{
			models.GET("", h.Reference.ListVehicleModels)
			models.POST("", h.Reference.CreateVehicleModel)
			models.PUT("/:id", h.Reference.UpdateVehicleModel)
			models.DELETE("/:id", h.Reference.DeleteVehicleModel)
		}
	}

	// Sales ledger
	collections := protected.Group("/collections")
	collections.Use(middleware.RequirePermission(perms, "collections.sales"))
	{
		collections.GET("", h.Collection.List)
		// Creation is idempotent so a retried POST cannot burn a second
		// receipt number.
		collections.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Collection.Create)
		collections.GET("/deleted", middleware.RequirePermission(perms, "collections.deleted"), h.Collection.ListDeleted)
		collections.GET("/:id", h.Collection.Get)
		collections.PUT("/:id", h.Collection.Update)
		collections.DELETE("/:id", h.Collection.Delete)
		collections.POST("/:id/restore", middleware.RequirePermission(perms, "collections.deleted"), h.Collection.Restore)
		collections.POST("/:id/print", h.Printer.PrintSales)
	}

	// Service ledger
	serviceCollections := protected.Group("/service-collections")
	serviceCollections.Use(middleware.RequirePermission(perms, "collections.service"))
	{
		serviceCollections.GET("", h.ServiceCollection.List)
		serviceCollections.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.ServiceCollection.Create)
		serviceCollections.GET("/deleted", middleware.RequirePermission(perms, "collections.deleted"), h.ServiceCollection.ListDeleted)
		serviceCollections.GET("/pending/:customer_id", h.ServiceCollection.ListPending)
		serviceCollections.GET("/:id", h.ServiceCollection.Get)
		serviceCollections.PUT("/:id", h.ServiceCollection.Update)
		serviceCollections.DELETE("/:id", h.ServiceCollection.Delete)
		serviceCollections.POST("/:id/restore", middleware.RequirePermission(perms, "collections.deleted"), h.ServiceCollection.Restore)
		serviceCollections.POST("/:id/print", h.Printer.PrintService)
	}

	// Enquiries
	enquiries := protected.Group("/enquiries")
	enquiries.Use(middleware.RequirePermission(perms, "enquiries"))
	{
		enquiries.GET("", h.Enquiry.List)
		enquiries.POST("", h.Enquiry.Create)
		enquiries.GET("/:id", h.Enquiry.Get)
		enquiries.PATCH("/:id/status", h.Enquiry.UpdateStatus)
	}

	// Report exports
	exports := protected.Group("/exports")
	exports.Use(middleware.RequirePermission(perms, "reports"))
	{
		exports.GET("/collections", h.Export.Sales)
		exports.GET("/service-collections", h.Export.Service)
	}

	// Staff administration (admin only)
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.PATCH("/:id/active", h.User.SetActive)
		users.PATCH("/:id/role", h.User.SetRole)
	}

	// Menu permission administration (admin only)
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequireRole("admin"))
	{
		permissions.GET("", h.Permission.List)
		permissions.GET("/:role", h.Permission.Get)
		permissions.PUT("/:role", h.Permission.Upsert)
	}
}
