package dto

import (
	"io"

	"github.com/projectdesk/pma_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FileUpload is one attachment received at the boundary: the original
// filename plus a reader over its bytes.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

// CreateProjectRequest carries a new project. Quotation and FinalPrice
// arrive as strings and are parsed into decimals at the boundary.
type CreateProjectRequest struct {
	ProjectName string `form:"projectName" binding:"required"`
	Description string `form:"description"`
	ClientID    string `form:"clientId" binding:"required"`
	Quotation   string `form:"quotation" binding:"required"`
	FinalPrice  string `form:"finalPrice" binding:"required"`

	RequirementDoc *FileUpload `form:"-"`
	ClientDoc      *FileUpload `form:"-"`
}

// UpdateProjectRequest merges non-nil fields. The project code is
// never updatable.
type UpdateProjectRequest struct {
	ProjectName *string `form:"projectName"`
	Description *string `form:"description"`
	ClientID    *string `form:"clientId"`
	Quotation   *string `form:"quotation"`
	FinalPrice  *string `form:"finalPrice"`

	RequirementDoc *FileUpload `form:"-"`
	ClientDoc      *FileUpload `form:"-"`
}

// ProjectResponse is the outward shape of a project.
type ProjectResponse struct {
	ProjectID      string             `json:"projectID"`
	ProjectCode    string             `json:"projectCode"`
	ProjectName    string             `json:"projectName"`
	Description    string             `json:"description"`
	ClientID       string             `json:"clientID"`
	Quotation      decimal.Decimal    `json:"quotation"`
	FinalPrice     decimal.Decimal    `json:"finalPrice"`
	RequirementDoc *domain.Attachment `json:"requirementDoc,omitempty"`
	ClientDoc      *domain.Attachment `json:"clientDoc,omitempty"`
}

// ToProjectResponse converts a domain.Project to its response DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ProjectID,
		ProjectCode:    p.ProjectCode,
		ProjectName:    p.ProjectName,
		Description:    p.Description,
		ClientID:       p.ClientID,
		Quotation:      p.Quotation,
		FinalPrice:     p.FinalPrice,
		RequirementDoc: p.RequirementDoc,
		ClientDoc:      p.ClientDoc,
	}
}

// ListProjectsResponse wraps the full collection snapshot.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project.
func ToListProjectsResponse(projects []domain.Project) ListProjectsResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return ListProjectsResponse{Projects: out}
}
