package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/projectdesk/pma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// meHandler serves the routes every authenticated member can reach:
// their own dashboard, their own password and their own task statuses.
type meHandler struct {
	authService      portssvc.AuthSvcFacade
	taskService      portssvc.TaskSvcFacade
	dashboardService portssvc.DashboardSvcFacade
}

func newMeHandler(as portssvc.AuthSvcFacade, ts portssvc.TaskSvcFacade, ds portssvc.DashboardSvcFacade) *meHandler {
	return &meHandler{
		authService:      as,
		taskService:      ts,
		dashboardService: ds,
	}
}

func registerMeRoutes(rg *gin.RouterGroup, as portssvc.AuthSvcFacade, ts portssvc.TaskSvcFacade, ds portssvc.DashboardSvcFacade) {
	h := newMeHandler(as, ts, ds)

	rg.GET("/session", h.getSession)

	me := rg.Group("/me")
	{
		me.GET("/dashboard", h.myDashboard)
		me.PUT("/password", h.changeMyPassword)
		me.PATCH("/tasks/:id/status", h.updateMyTaskStatus)
	}
}

// getSession godoc
// @Summary Get the caller's resolved session
// @Description Returns the session the middleware resolved for this request: user, member, role and display name.
// @Tags me
// @Produce json
// @Success 200 {object} domain.Session
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /session [get]
func (h *meHandler) getSession(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// myDashboard godoc
// @Summary Get the caller's dashboard
// @Description Returns the caller's tasks and derived financial summary. Callers with no member profile get an empty dashboard.
// @Tags me
// @Produce json
// @Success 200 {object} dto.MemberDashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/dashboard [get]
func (h *meHandler) myDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.dashboardService.MemberDashboard(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build member dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve dashboard"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// changeMyPassword godoc
// @Summary Change the caller's password
// @Description The current password re-authenticates the caller before anything changes. A successful change clears any forced-reset flag.
// @Tags me
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current password is wrong"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/password [put]
func (h *meHandler) changeMyPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Current password is incorrect"})
		} else {
			logger.Error("Failed to change password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// updateMyTaskStatus godoc
// @Summary Update the status of one of the caller's tasks
// @Description Members may move only tasks assigned to them; any status may move to any other status.
// @Tags me
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Task belongs to someone else"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/tasks/{id}/status [patch]
func (h *meHandler) updateMyTaskStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taskID := c.Param("id")

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// A non-admin session without a member profile owns no tasks.
	if !session.IsAdmin && session.MemberID == "" {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You can only update your own tasks"})
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, status, session.MemberID, session.IsAdmin)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "You can only update your own tasks"})
		} else {
			logger.Error("Failed to update task status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update task status"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}
