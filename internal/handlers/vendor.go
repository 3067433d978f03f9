package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Lalo789/weddingplan/internal/middleware"
	"github.com/Lalo789/weddingplan/internal/services"
)

type VendorHandler struct {
	vendorService services.VendorService
}

func NewVendorHandler(vendorService services.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

type vendorRequest struct {
	Name        string           `json:"name"`
	ServiceType string           `json:"service_type"`
	ContactName string           `json:"contact_name"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email"`
	Rating      *decimal.Decimal `json:"rating"`
	Notes       string           `json:"notes"`
	Active      bool             `json:"active"`
}

func (req vendorRequest) toInput() services.VendorInput {
	return services.VendorInput{
		Name:        req.Name,
		ServiceType: req.ServiceType,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Rating:      req.Rating,
		Notes:       req.Notes,
		Active:      req.Active,
	}
}

func (vh *VendorHandler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	vendors, err := vh.vendorService.List(c.Request.Context(), actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"vendors": vendors})
}

func (vh *VendorHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	vendor, err := vh.vendorService.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, vendor)
}

func (vh *VendorHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	vendor, err := vh.vendorService.Update(c.Request.Context(), actor, id, req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, vendor)
}

func (vh *VendorHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := vh.vendorService.Delete(c.Request.Context(), actor, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "vendor deleted"})
}
