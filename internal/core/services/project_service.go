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
	"github.com/shopspring/decimal"
)

// projectService implements the ProjectSvcFacade. Attachments go to
// the blob store under keys derived from the project code, so a
// re-upload overwrites the previous file.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	blobStore   portssvc.BlobStore
}

// NewProjectService creates a new project service with the provided dependencies
func NewProjectService(projectRepo portsrepo.ProjectRepository, blobStore portssvc.BlobStore) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo: projectRepo,
		blobStore:   blobStore,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// parseAmount parses a currency amount received at the boundary.
func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid %s amount %q", apperrors.ErrValidation, field, value)
	}
	return d, nil
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	quotation, err := parseAmount("quotation", req.Quotation)
	if err != nil {
		return nil, err
	}
	finalPrice, err := parseAmount("finalPrice", req.FinalPrice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ProjectCode: domain.NewProjectCode(now),
		ProjectName: req.ProjectName,
		Description: req.Description,
		ClientID:    req.ClientID,
		Quotation:   quotation,
		FinalPrice:  finalPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.RequirementDoc != nil {
		att, err := s.storeAttachment(ctx, project.ProjectCode, "requirement", req.RequirementDoc)
		if err != nil {
			return nil, err
		}
		project.RequirementDoc = att
	}
	if req.ClientDoc != nil {
		att, err := s.storeAttachment(ctx, project.ProjectCode, "client", req.ClientDoc)
		if err != nil {
			return nil, err
		}
		project.ClientDoc = att
	}

	projectID, err := s.projectRepo.SaveProject(ctx, project)
	if err != nil {
		s.LogError(ctx, err, "Failed to save project",
			slog.String("project_code", project.ProjectCode))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	project.ProjectID = projectID

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", projectID),
		slog.String("project_code", project.ProjectCode))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project by ID",
				slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

// UpdateProject merges the non-nil request fields. The project code is
// never touched; replacement uploads reuse the original code's keys.
func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ClientID != nil {
		project.ClientID = *req.ClientID
	}
	if req.Quotation != nil {
		quotation, err := parseAmount("quotation", *req.Quotation)
		if err != nil {
			return nil, err
		}
		project.Quotation = quotation
	}
	if req.FinalPrice != nil {
		finalPrice, err := parseAmount("finalPrice", *req.FinalPrice)
		if err != nil {
			return nil, err
		}
		project.FinalPrice = finalPrice
	}

	if req.RequirementDoc != nil {
		att, err := s.storeAttachment(ctx, project.ProjectCode, "requirement", req.RequirementDoc)
		if err != nil {
			return nil, err
		}
		project.RequirementDoc = att
	}
	if req.ClientDoc != nil {
		att, err := s.storeAttachment(ctx, project.ProjectCode, "client", req.ClientDoc)
		if err != nil {
			return nil, err
		}
		project.ClientDoc = att
	}

	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = updaterUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project",
			slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes the document. Stored attachment blobs stay in
// the blob store; tasks and payments keep their dangling projectId.
func (s *projectService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete project",
				slog.String("project_id", projectID))
		}
		return err
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

// storeAttachment uploads one file under the project's stable key and
// returns the attachment reference to embed in the document.
func (s *projectService) storeAttachment(ctx context.Context, projectCode, kind string, upload *dto.FileUpload) (*domain.Attachment, error) {
	key := fmt.Sprintf("project_docs/%s_%s", projectCode, kind)
	if err := s.blobStore.Upload(ctx, key, upload.Reader); err != nil {
		s.LogError(ctx, err, "Failed to store project attachment",
			slog.String("key", key))
		return nil, fmt.Errorf("failed to store %s document: %w", kind, err)
	}
	return &domain.Attachment{
		URL:  s.blobStore.DownloadURL(key),
		Name: upload.Name,
	}, nil
}
