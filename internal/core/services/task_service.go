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

// taskService implements the TaskSvcFacade.
type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepository
}

// NewTaskService creates a new task service with the provided dependencies
func NewTaskService(taskRepo portsrepo.TaskRepository) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	rate, err := parseAmount("rate", req.Rate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := domain.Task{
		ProjectID:    req.ProjectID,
		TaskName:     req.TaskName,
		Description:  req.Description,
		AssignedTo:   req.AssignedTo,
		Rate:         rate,
		Status:       status,
		ParentTaskID: req.ParentTaskID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	taskID, err := s.taskRepo.SaveTask(ctx, task)
	if err != nil {
		s.LogError(ctx, err, "Failed to save task",
			slog.String("project_id", req.ProjectID))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	task.TaskID = taskID

	s.LogInfo(ctx, "Task created",
		slog.String("task_id", taskID),
		slog.String("assigned_to", task.AssignedTo))
	return &task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find task by ID",
				slog.String("task_id", taskID))
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, params dto.ListTasksParams) ([]domain.Task, error) {
	filter := portsrepo.TaskFilter{
		AssignedTo: params.AssignedTo,
		ProjectID:  params.ProjectID,
	}
	if params.Status != "" {
		status, err := domain.ParseTaskStatus(params.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.Status = status
	}

	tasks, err := s.taskRepo.FindTasks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return nil, err
	}
	if tasks == nil {
		return []domain.Task{}, nil
	}
	return tasks, nil
}

// UpdateTask is the full admin edit; every field is replaceable.
func (s *taskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, updaterUserID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		task.ProjectID = *req.ProjectID
	}
	if req.TaskName != nil {
		task.TaskName = *req.TaskName
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.Rate != nil {
		rate, err := parseAmount("rate", *req.Rate)
		if err != nil {
			return nil, err
		}
		task.Rate = rate
	}
	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		task.Status = status
	}
	if req.ParentTaskID != nil {
		task.ParentTaskID = *req.ParentTaskID
	}

	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = updaterUserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task",
			slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// UpdateTaskStatus is the status-only transition. Only asAdmin skips
// the ownership check; otherwise the task must be assigned to
// memberID, and a caller with no member profile (empty memberID) owns
// nothing. Any status is reachable from any status.
func (s *taskService) UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus, memberID string, asAdmin bool) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !asAdmin && (memberID == "" || task.AssignedTo != memberID) {
		s.LogWarn(ctx, "Status change rejected, task not assigned to caller",
			slog.String("task_id", taskID),
			slog.String("member_id", memberID))
		return nil, apperrors.ErrForbidden
	}

	if err := s.taskRepo.UpdateTaskStatus(ctx, taskID, status); err != nil {
		s.LogError(ctx, err, "Failed to update task status",
			slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	task.Status = status
	s.LogInfo(ctx, "Task status updated",
		slog.String("task_id", taskID),
		slog.String("status", string(status)))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete task",
				slog.String("task_id", taskID))
		}
		return err
	}
	s.LogInfo(ctx, "Task deleted", slog.String("task_id", taskID))
	return nil
}
