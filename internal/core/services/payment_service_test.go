package services_test

import (
	"context"
	"testing"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/core/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockTaskRepo    *MockTaskRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockTaskRepo)
}

// --- CreatePayment Tests ---

func (suite *PaymentServiceTestSuite) TestCreatePayment_Received() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	paymentID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		ProjectID: uuid.NewString(),
		Amount:    "5000",
		Date:      "2025-06-15",
		Type:      "received",
	}

	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Type == domain.PaymentReceived && p.Amount.Equal(decimal.NewFromInt(5000)) &&
			p.RecipientID == "" && p.CreatedBy == creatorID
	})).Return(paymentID, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(paymentID, payment.PaymentID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PaidRequiresRecipientAndTask() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		ProjectID: uuid.NewString(),
		Amount:    "150",
		Date:      "2025-06-15",
		Type:      "paid",
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PaidWithRecipientAndTask() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	recipientID := uuid.NewString()
	taskID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		ProjectID:   uuid.NewString(),
		Amount:      "150",
		Date:        "2025-06-15",
		Type:        "paid",
		RecipientID: recipientID,
		TaskID:      taskID,
	}

	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Type == domain.PaymentPaid && p.RecipientID == recipientID && p.TaskID == taskID
	})).Return(paymentID, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(paymentID, payment.PaymentID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InvalidType() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		ProjectID: uuid.NewString(),
		Amount:    "150",
		Date:      "2025-06-15",
		Type:      "refund",
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- PayableTasks Tests ---

func (suite *PaymentServiceTestSuite) TestPayableTasks_OnlyCompleted() {
	ctx := context.Background()
	memberID := uuid.NewString()
	completed := []domain.Task{
		{TaskID: uuid.NewString(), TaskName: "Ship feature", ProjectID: uuid.NewString(), Status: domain.StatusCompleted, Rate: decimal.NewFromInt(200)},
	}

	suite.mockTaskRepo.On("FindTasks", ctx, portsrepo.TaskFilter{
		AssignedTo: memberID,
		Status:     domain.StatusCompleted,
	}).Return(completed, nil).Once()

	tasks, err := suite.service.PayableTasks(ctx, memberID)

	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(completed[0].TaskID, tasks[0].TaskID)
	suite.True(tasks[0].Rate.Equal(decimal.NewFromInt(200)))
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestPayableTasks_NoneCompleted() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockTaskRepo.On("FindTasks", ctx, portsrepo.TaskFilter{
		AssignedTo: memberID,
		Status:     domain.StatusCompleted,
	}).Return(nil, nil).Once()

	tasks, err := suite.service.PayableTasks(ctx, memberID)

	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)
}

// --- DeletePayment Tests ---

func (suite *PaymentServiceTestSuite) TestDeletePayment_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.mockPaymentRepo.On("DeletePayment", ctx, paymentID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeletePayment(ctx, paymentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
