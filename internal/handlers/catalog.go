package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Lalo789/weddingplan/internal/middleware"
	"github.com/Lalo789/weddingplan/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type serviceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	ImageURL    string          `json:"image_url"`
}

func (req serviceRequest) toInput() services.ServiceInput {
	return services.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		Available:   req.Available,
		ImageURL:    req.ImageURL,
	}
}

// ListAvailable is the public catalog view.
func (ch *CatalogHandler) ListAvailable(c *gin.Context) {
	result, err := ch.catalogService.ListAvailable(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"services": result})
}

// Search backs the live catalog search box: min 2 characters, capped
// results, available services only.
func (ch *CatalogHandler) Search(c *gin.Context) {
	result, err := ch.catalogService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"services": result})
}

func (ch *CatalogHandler) ListAll(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	result, err := ch.catalogService.ListAll(c.Request.Context(), actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"services": result})
}

func (ch *CatalogHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	service, err := ch.catalogService.CreateService(c.Request.Context(), actor, req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, service)
}

func (ch *CatalogHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	service, err := ch.catalogService.UpdateService(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, service)
}

func (ch *CatalogHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ch.catalogService.DeleteService(c.Request.Context(), actor, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "service deleted"})
}
