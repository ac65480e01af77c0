package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the admin landing-screen aggregation.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(ds)
	rg.GET("/dashboard", h.adminDashboard)
}

// adminDashboard godoc
// @Summary Get the admin dashboard
// @Description Aggregates entity counts, total earnings from received payments, the five newest projects and per-project values.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.AdminDashboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) adminDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.dashboardService.AdminDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build admin dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve dashboard"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
