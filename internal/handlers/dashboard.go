package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracklite/task-tracker-api/internal/dto"
	apierrors "github.com/tracklite/task-tracker-api/internal/errors"
	"github.com/tracklite/task-tracker-api/internal/middleware"
	"github.com/tracklite/task-tracker-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the aggregated task statistics and per-employee
// rollups, scoped to the caller's own tasks for employee accounts.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	claims, exists := middleware.GetCaller(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	overview, err := h.dashboardService.Overview(claims.Caller())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToDashboardDTO(overview)})
}
