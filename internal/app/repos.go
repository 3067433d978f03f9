package app

import (
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	Service      repos.ServiceRepo
	Vendor       repos.VendorRepo
	Event        repos.EventRepo
	EventService repos.EventServiceRepo
	Activity     repos.ActivityRepo
	ClientRecord repos.ClientRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		Service:      repos.NewServiceRepo(db, log),
		Vendor:       repos.NewVendorRepo(db, log),
		Event:        repos.NewEventRepo(db, log),
		EventService: repos.NewEventServiceRepo(db, log),
		Activity:     repos.NewActivityRepo(db, log),
		ClientRecord: repos.NewClientRecordRepo(db, log),
	}
}
