package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portsrepo "github.com/projectdesk/pma_backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TaskRepository persists tasks in the tasks collection.
type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: db.Collection("tasks")}
}

var _ portsrepo.TaskRepository = (*TaskRepository)(nil)

func (r *TaskRepository) SaveTask(ctx context.Context, task domain.Task) (string, error) {
	if task.TaskID == "" {
		task.TaskID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		return "", fmt.Errorf("failed to save task: %w", err)
	}
	return task.TaskID, nil
}

func (r *TaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	var task domain.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) FindTasks(ctx context.Context, filter portsrepo.TaskFilter) ([]domain.Task, error) {
	query := bson.M{}
	if filter.AssignedTo != "" {
		query["assignedTo"] = filter.AssignedTo
	}
	if filter.ProjectID != "" {
		query["projectId"] = filter.ProjectID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.TaskID}, task)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": taskID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": taskID})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
