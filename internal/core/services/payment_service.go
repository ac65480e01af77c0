package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/dto"
)

// paymentService implements the PaymentSvcFacade. Payments are
// append-and-delete only; there is no update path.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
	taskRepo    portsrepo.TaskRepository
}

// NewPaymentService creates a new payment service with the provided dependencies
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, taskRepo portsrepo.TaskRepository) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		taskRepo:    taskRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	paymentType, err := domain.ParsePaymentType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	if paymentType == domain.PaymentPaid && (req.RecipientID == "" || req.TaskID == "") {
		return nil, fmt.Errorf("%w: recipientId and taskId are required for paid payments", apperrors.ErrValidation)
	}

	now := time.Now()
	payment := domain.Payment{
		ProjectID:   req.ProjectID,
		Amount:      amount,
		Date:        req.Date,
		Description: req.Description,
		Type:        paymentType,
		RecipientID: req.RecipientID,
		TaskID:      req.TaskID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	paymentID, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("project_id", req.ProjectID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	payment.PaymentID = paymentID

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", paymentID),
		slog.String("type", string(paymentType)))
	return &payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment",
				slog.String("payment_id", paymentID))
		}
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}

// PayableTasks narrows to the member's completed tasks so the pay
// screen can pre-fill the amount and project from the chosen task.
func (s *paymentService) PayableTasks(ctx context.Context, memberID string) ([]dto.PayableTask, error) {
	tasks, err := s.taskRepo.FindTasks(ctx, portsrepo.TaskFilter{
		AssignedTo: memberID,
		Status:     domain.StatusCompleted,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list payable tasks",
			slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to list payable tasks: %w", err)
	}

	out := make([]dto.PayableTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.PayableTask{
			TaskID:    t.TaskID,
			TaskName:  t.TaskName,
			ProjectID: t.ProjectID,
			Rate:      t.Rate,
		})
	}
	return out, nil
}
