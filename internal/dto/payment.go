package dto

import (
	"github.com/projectdesk/pma_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a payment. RecipientID and TaskID are
// required only when Type is "paid".
type CreatePaymentRequest struct {
	ProjectID   string `json:"projectId" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	RecipientID string `json:"recipientId"`
	TaskID      string `json:"taskId"`
}

// ListPaymentsResponse wraps the full collection snapshot.
type ListPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
}

// PayableTask is a completed task for the pay-a-member flow. Rate and
// project are returned so the client can pre-fill the form; the amount
// stays freely editable before submit.
type PayableTask struct {
	TaskID    string          `json:"taskID"`
	TaskName  string          `json:"taskName"`
	ProjectID string          `json:"projectID"`
	Rate      decimal.Decimal `json:"rate"`
}

// ListPayableTasksResponse wraps the narrowed task list.
type ListPayableTasksResponse struct {
	Tasks []PayableTask `json:"tasks"`
}
