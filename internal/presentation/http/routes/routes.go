package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vijaya/autospares-api/internal/config"
	domainRepo "github.com/vijaya/autospares-api/internal/domain/repository"
	"github.com/vijaya/autospares-api/internal/presentation/http/handler"
	"github.com/vijaya/autospares-api/internal/presentation/http/middleware"
	"github.com/vijaya/autospares-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Part      *handler.PartHandler
	Customer  *handler.CustomerHandler
	Order     *handler.OrderHandler
	Udhaari   *handler.UdhaariHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Uploaded files (part images, business logos)
	router.Static(deps.Cfg.Storage.PublicURL, deps.Cfg.Storage.Path)

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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
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

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)
	protected.POST("/settings/logo", h.Settings.UploadLogo)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	registerPartRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerUdhaariRoutes(protected, h)
}

func registerPartRoutes(protected *gin.RouterGroup, h *Handlers) {
	parts := protected.Group("/parts")
	{
		parts.GET("", h.Part.List)
		parts.POST("", h.Part.Create)
		parts.GET("/low-stock", h.Part.LowStock)
		parts.GET("/:id", h.Part.Get)
		parts.PUT("/:id", h.Part.Update)
		parts.PATCH("/:id/stock", h.Part.SetStock)
		parts.POST("/:id/image", h.Part.UploadImage)
		parts.DELETE("/:id", h.Part.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/invoice", h.Order.Invoice)
		orders.GET("/:id/share/whatsapp", h.Order.WhatsAppShare)
		orders.GET("/:id/share/email", h.Order.EmailShare)
		orders.POST("/:id/share/email", h.Order.SendInvoiceEmail)
	}
}

func registerUdhaariRoutes(protected *gin.RouterGroup, h *Handlers) {
	udhaaris := protected.Group("/udhaaris")
	{
		udhaaris.GET("", h.Udhaari.List)
		udhaaris.POST("", h.Udhaari.Create)
		udhaaris.GET("/summary", h.Udhaari.Summary)
		udhaaris.GET("/:id", h.Udhaari.Get)
		udhaaris.POST("/:id/payments", h.Udhaari.RecordPayment)
	}
}
