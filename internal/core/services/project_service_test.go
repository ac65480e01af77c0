package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	"github.com/projectdesk/pma_backend/internal/core/domain"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/core/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockBlobStore   *MockBlobStore
	service         portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockBlobStore = new(MockBlobStore)
	suite.service = services.NewProjectService(suite.mockProjectRepo, suite.mockBlobStore)
}

// --- CreateProject Tests ---

func (suite *ProjectServiceTestSuite) TestCreateProject_NoAttachments() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	projectID := uuid.NewString()
	req := dto.CreateProjectRequest{
		ProjectName: "Website Revamp",
		ClientID:    uuid.NewString(),
		Quotation:   "12000",
		FinalPrice:  "10000",
	}

	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.ProjectName == req.ProjectName &&
			strings.HasPrefix(p.ProjectCode, "PRJ-") &&
			p.Quotation.Equal(decimal.NewFromInt(12000)) &&
			p.FinalPrice.Equal(decimal.NewFromInt(10000)) &&
			p.RequirementDoc == nil && p.ClientDoc == nil
	})).Return(projectID, nil).Once()

	project, err := suite.service.CreateProject(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.Equal(projectID, project.ProjectID)
	suite.NotEmpty(project.ProjectCode)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockBlobStore.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_WithAttachments() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.CreateProjectRequest{
		ProjectName:    "Website Revamp",
		ClientID:       uuid.NewString(),
		Quotation:      "12000",
		FinalPrice:     "10000",
		RequirementDoc: &dto.FileUpload{Name: "requirements.pdf", Reader: strings.NewReader("req bytes")},
		ClientDoc:      &dto.FileUpload{Name: "contract.pdf", Reader: strings.NewReader("client bytes")},
	}

	suite.mockBlobStore.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "project_docs/PRJ-") && strings.HasSuffix(key, "_requirement")
	}), mock.Anything).Return(nil).Once()
	suite.mockBlobStore.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "project_docs/PRJ-") && strings.HasSuffix(key, "_client")
	}), mock.Anything).Return(nil).Once()
	suite.mockBlobStore.On("DownloadURL", mock.AnythingOfType("string")).Return("http://files.local/blob").Twice()
	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.RequirementDoc != nil && p.RequirementDoc.Name == "requirements.pdf" &&
			p.ClientDoc != nil && p.ClientDoc.Name == "contract.pdf"
	})).Return(projectID, nil).Once()

	project, err := suite.service.CreateProject(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(project.RequirementDoc)
	suite.Equal("requirements.pdf", project.RequirementDoc.Name)
	suite.mockBlobStore.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_InvalidQuotation() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		ProjectName: "Website Revamp",
		ClientID:    uuid.NewString(),
		Quotation:   "twelve grand",
		FinalPrice:  "10000",
	}

	project, err := suite.service.CreateProject(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

// --- UpdateProject Tests ---

func (suite *ProjectServiceTestSuite) TestUpdateProject_CodeNeverChanges() {
	ctx := context.Background()
	projectID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Project{
		ProjectID:   projectID,
		ProjectCode: "PRJ-1717171717171",
		ProjectName: "Old Name",
		Quotation:   decimal.NewFromInt(12000),
		FinalPrice:  decimal.NewFromInt(10000),
	}
	newName := "New Name"
	req := dto.UpdateProjectRequest{ProjectName: &newName}

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockProjectRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.ProjectCode == "PRJ-1717171717171" && p.ProjectName == newName
	})).Return(nil).Once()

	project, err := suite.service.UpdateProject(ctx, projectID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal("PRJ-1717171717171", project.ProjectCode)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_ReplacementUploadReusesKey() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{
		ProjectID:   projectID,
		ProjectCode: "PRJ-1717171717171",
		ProjectName: "Website Revamp",
	}
	req := dto.UpdateProjectRequest{
		RequirementDoc: &dto.FileUpload{Name: "requirements-v2.pdf", Reader: strings.NewReader("new bytes")},
	}

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockBlobStore.On("Upload", ctx, "project_docs/PRJ-1717171717171_requirement", mock.Anything).Return(nil).Once()
	suite.mockBlobStore.On("DownloadURL", "project_docs/PRJ-1717171717171_requirement").Return("http://files.local/blob").Once()
	suite.mockProjectRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.RequirementDoc != nil && p.RequirementDoc.Name == "requirements-v2.pdf"
	})).Return(nil).Once()

	project, err := suite.service.UpdateProject(ctx, projectID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("requirements-v2.pdf", project.RequirementDoc.Name)
	suite.mockBlobStore.AssertExpectations(suite.T())
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
