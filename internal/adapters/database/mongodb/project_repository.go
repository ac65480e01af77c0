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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectRepository persists projects in the projects collection.
type ProjectRepository struct {
	collection *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{collection: db.Collection("projects")}
}

var _ portsrepo.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) SaveProject(ctx context.Context, project domain.Project) (string, error) {
	if project.ProjectID == "" {
		project.ProjectID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, project); err != nil {
		return "", fmt.Errorf("failed to save project: %w", err)
	}
	return project.ProjectID, nil
}

func (r *ProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var project domain.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	// Newest first so list views need no client-side sort
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []domain.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": project.ProjectID}, project)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": projectID})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
