package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Lalo789/weddingplan/internal/server"
)

const serviceName = "weddingplan"

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:      serviceName,
		AllowOrigins:     cfg.AllowOrigins,
		AuthHandler:      handlerset.Auth,
		AuthMiddleware:   middlewareset.Auth,
		AccountHandler:   handlerset.Account,
		EventHandler:     handlerset.Event,
		CatalogHandler:   handlerset.Catalog,
		VendorHandler:    handlerset.Vendor,
		DashboardHandler: handlerset.Dashboard,
	})
}
