package dto

import "github.com/projectdesk/pma_backend/internal/core/domain"

// CreateTaskRequest carries a new task.
type CreateTaskRequest struct {
	ProjectID    string `json:"projectId" binding:"required"`
	TaskName     string `json:"taskName" binding:"required"`
	Description  string `json:"description"`
	AssignedTo   string `json:"assignedTo" binding:"required"`
	Rate         string `json:"rate" binding:"required"`
	Status       string `json:"status" binding:"required"`
	ParentTaskID string `json:"parentTaskId"`
}

// UpdateTaskRequest merges non-nil fields (full admin edit).
type UpdateTaskRequest struct {
	ProjectID    *string `json:"projectId"`
	TaskName     *string `json:"taskName"`
	Description  *string `json:"description"`
	AssignedTo   *string `json:"assignedTo"`
	Rate         *string `json:"rate"`
	Status       *string `json:"status"`
	ParentTaskID *string `json:"parentTaskId"`
}

// UpdateTaskStatusRequest is the member-facing status-only transition.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListTasksParams narrows a task listing by equality.
type ListTasksParams struct {
	AssignedTo string `form:"assignedTo"`
	ProjectID  string `form:"projectId"`
	Status     string `form:"status"`
}

// ListTasksResponse wraps the task snapshot.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}
