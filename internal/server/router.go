package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Lalo789/weddingplan/internal/handlers"
	"github.com/Lalo789/weddingplan/internal/middleware"
)

type RouterConfig struct {
	ServiceName      string
	AllowOrigins     []string
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	AccountHandler   *handlers.AccountHandler
	EventHandler     *handlers.EventHandler
	CatalogHandler   *handlers.CatalogHandler
	VendorHandler    *handlers.VendorHandler
	DashboardHandler *handlers.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.GET("/services", cfg.CatalogHandler.ListAvailable)
	router.GET("/clients", cfg.AccountHandler.LegacyClients)

	api := router.Group("/api")
	{
		api.POST("/check-username", cfg.AuthHandler.CheckUsername)
		api.POST("/check-email", cfg.AuthHandler.CheckEmail)
		api.GET("/services/search", cfg.CatalogHandler.Search)
	}

	// Authenticated
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/logout", cfg.AuthHandler.Logout)
		protected.GET("/me", cfg.AccountHandler.Me)

		protected.GET("/events", cfg.EventHandler.List)
		protected.POST("/events", cfg.EventHandler.Create)
		protected.GET("/events/:id", cfg.EventHandler.Get)
		protected.PUT("/events/:id", cfg.EventHandler.Update)
		protected.DELETE("/events/:id", cfg.EventHandler.Delete)
		protected.POST("/events/:id/cancel", cfg.EventHandler.Cancel)
		protected.GET("/events/:id/total", cfg.EventHandler.Total)
		protected.POST("/events/:id/services", cfg.EventHandler.AttachService)
		protected.DELETE("/events/:id/services/:serviceID", cfg.EventHandler.DetachService)
	}

	// Administrator
	admin := router.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", cfg.DashboardHandler.Summary)

		admin.GET("/services", cfg.CatalogHandler.ListAll)
		admin.POST("/services", cfg.CatalogHandler.Create)
		admin.PUT("/services/:id", cfg.CatalogHandler.Update)
		admin.DELETE("/services/:id", cfg.CatalogHandler.Delete)

		admin.GET("/vendors", cfg.VendorHandler.List)
		admin.POST("/vendors", cfg.VendorHandler.Create)
		admin.PUT("/vendors/:id", cfg.VendorHandler.Update)
		admin.DELETE("/vendors/:id", cfg.VendorHandler.Delete)

		admin.GET("/events", cfg.EventHandler.ListAll)

		admin.GET("/users", cfg.AccountHandler.List)
		admin.POST("/users/:id/toggle-active", cfg.AccountHandler.ToggleActive)
		admin.DELETE("/users/:id", cfg.AccountHandler.Delete)
	}

	return router
}
