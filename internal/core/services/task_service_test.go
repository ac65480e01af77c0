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

type TaskServiceTestSuite struct {
	suite.Suite
	mockTaskRepo *MockTaskRepository
	service      portssvc.TaskSvcFacade
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.service = services.NewTaskService(suite.mockTaskRepo)
}

// --- CreateTask Tests ---

func (suite *TaskServiceTestSuite) TestCreateTask_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	taskID := uuid.NewString()
	req := dto.CreateTaskRequest{
		ProjectID:  uuid.NewString(),
		TaskName:   "Implement API",
		AssignedTo: uuid.NewString(),
		Rate:       "150.50",
		Status:     "pending",
	}

	suite.mockTaskRepo.On("SaveTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.TaskName == req.TaskName && t.Status == domain.StatusPending &&
			t.Rate.Equal(decimal.RequireFromString("150.50")) && t.CreatedBy == creatorID
	})).Return(taskID, nil).Once()

	task, err := suite.service.CreateTask(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(task)
	suite.Equal(taskID, task.TaskID)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_InvalidStatus() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		ProjectID:  uuid.NewString(),
		TaskName:   "Implement API",
		AssignedTo: uuid.NewString(),
		Rate:       "150",
		Status:     "done",
	}

	task, err := suite.service.CreateTask(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_InvalidRate() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		ProjectID:  uuid.NewString(),
		TaskName:   "Implement API",
		AssignedTo: uuid.NewString(),
		Rate:       "one hundred",
		Status:     "pending",
	}

	task, err := suite.service.CreateTask(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListTasks Tests ---

func (suite *TaskServiceTestSuite) TestListTasks_FilterPassthrough() {
	ctx := context.Background()
	memberID := uuid.NewString()
	projectID := uuid.NewString()
	params := dto.ListTasksParams{AssignedTo: memberID, ProjectID: projectID, Status: "completed"}
	expected := []domain.Task{{TaskID: uuid.NewString(), Status: domain.StatusCompleted}}

	suite.mockTaskRepo.On("FindTasks", ctx, portsrepo.TaskFilter{
		AssignedTo: memberID,
		ProjectID:  projectID,
		Status:     domain.StatusCompleted,
	}).Return(expected, nil).Once()

	tasks, err := suite.service.ListTasks(ctx, params)

	suite.Require().NoError(err)
	suite.Len(tasks, 1)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestListTasks_InvalidStatusFilter() {
	ctx := context.Background()
	params := dto.ListTasksParams{Status: "finished"}

	tasks, err := suite.service.ListTasks(ctx, params)

	suite.Require().Error(err)
	suite.Nil(tasks)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateTaskStatus Tests ---

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_OwnTask() {
	ctx := context.Background()
	taskID := uuid.NewString()
	memberID := uuid.NewString()
	task := &domain.Task{TaskID: taskID, AssignedTo: memberID, Status: domain.StatusInProgress}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(task, nil).Once()
	suite.mockTaskRepo.On("UpdateTaskStatus", ctx, taskID, domain.StatusCompleted).Return(nil).Once()

	updated, err := suite.service.UpdateTaskStatus(ctx, taskID, domain.StatusCompleted, memberID, false)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_NotOwnTask() {
	ctx := context.Background()
	taskID := uuid.NewString()
	task := &domain.Task{TaskID: taskID, AssignedTo: uuid.NewString(), Status: domain.StatusInProgress}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(task, nil).Once()

	updated, err := suite.service.UpdateTaskStatus(ctx, taskID, domain.StatusCompleted, uuid.NewString(), false)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTaskStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_NoProfileOwnsNothing() {
	ctx := context.Background()
	taskID := uuid.NewString()
	task := &domain.Task{TaskID: taskID, AssignedTo: uuid.NewString(), Status: domain.StatusInProgress}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(task, nil).Once()

	// A non-admin caller whose profile did not resolve has an empty
	// member ID; that must never widen access to other members' tasks.
	updated, err := suite.service.UpdateTaskStatus(ctx, taskID, domain.StatusCompleted, "", false)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTaskStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_AdminSkipsOwnershipCheck() {
	ctx := context.Background()
	taskID := uuid.NewString()
	task := &domain.Task{TaskID: taskID, AssignedTo: uuid.NewString(), Status: domain.StatusCompleted}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(task, nil).Once()
	suite.mockTaskRepo.On("UpdateTaskStatus", ctx, taskID, domain.StatusAttended).Return(nil).Once()

	// Any status is reachable from any status, completed included
	updated, err := suite.service.UpdateTaskStatus(ctx, taskID, domain.StatusAttended, "", true)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusAttended, updated.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

// --- UpdateTask Tests ---

func (suite *TaskServiceTestSuite) TestUpdateTask_Reassign() {
	ctx := context.Background()
	taskID := uuid.NewString()
	updaterID := uuid.NewString()
	newAssignee := uuid.NewString()
	existing := &domain.Task{
		TaskID:     taskID,
		TaskName:   "Implement API",
		AssignedTo: uuid.NewString(),
		Rate:       decimal.NewFromInt(100),
		Status:     domain.StatusPending,
	}
	req := dto.UpdateTaskRequest{AssignedTo: &newAssignee}

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(existing, nil).Once()
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.AssignedTo == newAssignee && t.TaskName == "Implement API" && t.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newAssignee, task.AssignedTo)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_EmptyRequestChangesNothing() {
	ctx := context.Background()
	taskID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Task{
		TaskID:       taskID,
		ProjectID:    uuid.NewString(),
		TaskName:     "Implement API",
		Description:  "REST endpoints",
		AssignedTo:   uuid.NewString(),
		Rate:         decimal.RequireFromString("150.50"),
		Status:       domain.StatusInProgress,
		ParentTaskID: uuid.NewString(),
	}
	// Value copy: the service edits the fetched task in place.
	before := *existing

	suite.mockTaskRepo.On("FindTaskByID", ctx, taskID).Return(existing, nil).Once()
	// An update with no fields set writes the task back untouched,
	// audit stamps aside.
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.ProjectID == before.ProjectID &&
			t.TaskName == before.TaskName &&
			t.Description == before.Description &&
			t.AssignedTo == before.AssignedTo &&
			t.Rate.Equal(before.Rate) &&
			t.Status == before.Status &&
			t.ParentTaskID == before.ParentTaskID &&
			t.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(before.Status, task.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
