package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lalo789/weddingplan/internal/middleware"
	"github.com/Lalo789/weddingplan/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) Summary(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	summary, err := dh.dashboardService.Summary(c.Request.Context(), actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, summary)
}
