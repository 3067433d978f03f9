package app

import (
	"github.com/Lalo789/weddingplan/internal/handlers"
	"github.com/Lalo789/weddingplan/internal/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Account   *handlers.AccountHandler
	Event     *handlers.EventHandler
	Catalog   *handlers.CatalogHandler
	Vendor    *handlers.VendorHandler
	Dashboard *handlers.DashboardHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(serviceset.Auth),
		Account:   handlers.NewAccountHandler(serviceset.Account),
		Event:     handlers.NewEventHandler(serviceset.Event, serviceset.Pricing),
		Catalog:   handlers.NewCatalogHandler(serviceset.Catalog),
		Vendor:    handlers.NewVendorHandler(serviceset.Vendor),
		Dashboard: handlers.NewDashboardHandler(serviceset.Dashboard),
	}
}
