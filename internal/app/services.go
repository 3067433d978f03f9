package app

import (
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/services"
)

type Services struct {
	Activity  services.ActivityService
	Auth      services.AuthService
	Account   services.AccountService
	Catalog   services.CatalogService
	Vendor    services.VendorService
	Event     services.EventService
	Pricing   services.PricingService
	Dashboard services.DashboardService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	activity := services.NewActivityService(db, log, reposet.Activity)
	return Services{
		Activity:  activity,
		Auth:      services.NewAuthService(db, log, reposet.User, activity, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Account:   services.NewAccountService(db, log, reposet.User, reposet.Event, reposet.EventService, reposet.ClientRecord, activity),
		Catalog:   services.NewCatalogService(db, log, reposet.Service, reposet.EventService),
		Vendor:    services.NewVendorService(db, log, reposet.Vendor),
		Event:     services.NewEventService(db, log, reposet.Event, reposet.EventService, reposet.Service, activity),
		Pricing:   services.NewPricingService(db, log, reposet.Event, reposet.EventService),
		Dashboard: services.NewDashboardService(db, log, reposet.User, reposet.Event, reposet.Service, activity),
	}
}
