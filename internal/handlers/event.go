package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Lalo789/weddingplan/internal/middleware"
	"github.com/Lalo789/weddingplan/internal/services"
)

type EventHandler struct {
	eventService   services.EventService
	pricingService services.PricingService
}

func NewEventHandler(eventService services.EventService, pricingService services.PricingService) *EventHandler {
	return &EventHandler{eventService: eventService, pricingService: pricingService}
}

type eventRequest struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	EventDate       string           `json:"event_date"`
	Location        string           `json:"location"`
	GuestCount      *int             `json:"guest_count"`
	EstimatedBudget *decimal.Decimal `json:"estimated_budget"`
	Status          string           `json:"status"`
}

func (req eventRequest) toInput() services.EventInput {
	return services.EventInput{
		Title:           req.Title,
		Description:     req.Description,
		EventDate:       req.EventDate,
		Location:        req.Location,
		GuestCount:      req.GuestCount,
		EstimatedBudget: req.EstimatedBudget,
		Status:          req.Status,
	}
}

func (eh *EventHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	event, err := eh.eventService.Create(c.Request.Context(), actor, req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, event)
}

func (eh *EventHandler) Get(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	event, err := eh.eventService.Get(c.Request.Context(), actor, eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, event)
}

func (eh *EventHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	event, err := eh.eventService.Edit(c.Request.Context(), actor, eventID, req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, event)
}

func (eh *EventHandler) Cancel(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	event, err := eh.eventService.Cancel(c.Request.Context(), actor, eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, event)
}

func (eh *EventHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := eh.eventService.Delete(c.Request.Context(), actor, eventID); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "event deleted"})
}

func (eh *EventHandler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	events, err := eh.eventService.ListForUser(c.Request.Context(), actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"events": events})
}

func (eh *EventHandler) ListAll(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	events, err := eh.eventService.ListAll(c.Request.Context(), actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"events": events})
}

func (eh *EventHandler) AttachService(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		ServiceID   uuid.UUID       `json:"service_id"`
		AgreedPrice decimal.Decimal `json:"agreed_price"`
		Notes       string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := eh.eventService.Attach(c.Request.Context(), actor, eventID, services.AttachInput{
		ServiceID:   req.ServiceID,
		AgreedPrice: req.AgreedPrice,
		Notes:       req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, row)
}

func (eh *EventHandler) DetachService(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	serviceID, err := uuid.Parse(c.Param("serviceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := eh.eventService.Detach(c.Request.Context(), actor, eventID, serviceID); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "service detached"})
}

func (eh *EventHandler) Total(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	total, err := eh.pricingService.TotalCost(c.Request.Context(), actor, eventID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, gin.H{"event_id": eventID, "total": total})
}
