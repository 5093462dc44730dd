package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/services"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		respondError(c, err, "dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetMonthlyRevenue handles GET /api/dashboard/monthly-revenue
func (h *DashboardHandler) GetMonthlyRevenue(c *gin.Context) {
	revenue, err := h.dashboardService.GetMonthlyRevenue()
	if err != nil {
		respondError(c, err, "monthly revenue")
		return
	}

	c.JSON(http.StatusOK, revenue)
}
