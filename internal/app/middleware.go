package app

import (
	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/middleware"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth, serviceset.Account),
	}
}
