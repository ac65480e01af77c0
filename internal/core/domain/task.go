package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaskStatus is a workflow label, not an ordered scale. Any status is
// reachable from any status.
type TaskStatus string

const (
	StatusAttended   TaskStatus = "attended"
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus validates a status value at the write boundary.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusAttended, StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("unrecognized task status %q", s)
}

// Task is a unit of billable work on a project, assigned to one team
// member. ParentTaskID is an optional self-reference stored without
// validation; no cycle check is performed and nothing downstream
// assumes a tree.
type Task struct {
	TaskID       string          `json:"taskID" bson:"_id,omitempty"`
	ProjectID    string          `json:"projectID" bson:"projectId"`
	TaskName     string          `json:"taskName" bson:"taskName"`
	Description  string          `json:"description" bson:"description"`
	AssignedTo   string          `json:"assignedTo" bson:"assignedTo"`
	Rate         decimal.Decimal `json:"rate" bson:"rate"`
	Status       TaskStatus      `json:"status" bson:"status"`
	ParentTaskID string          `json:"parentTaskID,omitempty" bson:"parentTaskId,omitempty"`
	AuditFields  `bson:",inline"`
}
