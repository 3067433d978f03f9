package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Lalo789/weddingplan/internal/middleware"
	"github.com/Lalo789/weddingplan/internal/services"
)

type AccountHandler struct {
	accountService services.AccountService
}

func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (ah *AccountHandler) Me(c *gin.Context) {
	RespondOK(c, middleware.CurrentUser(c))
}

func (ah *AccountHandler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	users, err := ah.accountService.List(c.Request.Context(), actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"users": users})
}

func (ah *AccountHandler) ToggleActive(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	user, err := ah.accountService.ToggleActive(c.Request.Context(), actor, targetID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, user)
}

func (ah *AccountHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ah.accountService.Delete(c.Request.Context(), actor, targetID); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "account deleted"})
}

// LegacyClients serves the read-only clientes listing kept for
// compatibility with the original application.
func (ah *AccountHandler) LegacyClients(c *gin.Context) {
	clients, err := ah.accountService.LegacyClients(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"clients": clients})
}
