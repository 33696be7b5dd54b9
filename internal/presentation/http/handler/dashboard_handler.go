package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *DashboardHandler) Stats(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		response.BadRequest(c, "from and to must be YYYY-MM-DD dates")
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
