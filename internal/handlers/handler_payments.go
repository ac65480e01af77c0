package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/projectdesk/pma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for payments. Payments are
// append-and-delete only; there is no update route.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(ps)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/payable-tasks", h.payableTasks)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// payableTasks godoc
// @Summary List a member's completed tasks for the pay flow
// @Description Returns the selected member's completed tasks with rate and project so the payment form can pre-fill.
// @Tags payments
// @Produce json
// @Param memberID query string true "Member ID"
// @Success 200 {object} dto.ListPayableTasksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/payable-tasks [get]
func (h *paymentHandler) payableTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	memberID := c.Query("memberID")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "memberID query parameter is required"})
		return
	}

	tasks, err := h.paymentService.PayableTasks(c.Request.Context(), memberID)
	if err != nil {
		logger.Error("Failed to list payable tasks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payable tasks"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPayableTasksResponse{Tasks: tasks})
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a received (from a client) or paid (to a member) payment. Paid payments require recipientId and taskId.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} domain.Payment
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("type", string(payment.Type)))
	c.JSON(http.StatusCreated, payment)
}

// listPayments godoc
// @Summary List payments
// @Description Returns payments of both types sorted newest first.
// @Tags payments
// @Produce json
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: payments})
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes the record. No balancing entry is written anywhere else.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		} else {
			logger.Error("Failed to delete payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
