package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/projectdesk/pma_backend/internal/apperrors"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/dto"
	"github.com/projectdesk/pma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests for projects. Create and update
// accept multipart form data so the requirement and client documents
// arrive in the same request as the fields.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

func registerProjectRoutes(rg *gin.RouterGroup, ps portssvc.ProjectSvcFacade) {
	h := newProjectHandler(ps)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProjectByID)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
	}
}

// formFileUpload opens the named multipart file if present. A missing
// file is not an error; the attachment is simply omitted.
func formFileUpload(c *gin.Context, field string) (*dto.FileUpload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &dto.FileUpload{Name: fh.Filename, Reader: f}, f, nil
}

// createProject godoc
// @Summary Create a project
// @Description Accepts multipart form data; projectName, clientId, quotation and finalPrice are required fields, requirementDoc and clientDoc are optional file parts. The project code is assigned server side.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param projectName formData string true "Project name"
// @Param description formData string false "Description"
// @Param clientId formData string true "Client ID"
// @Param quotation formData string true "Quoted amount"
// @Param finalPrice formData string true "Agreed price"
// @Param requirementDoc formData file false "Requirement document"
// @Param clientDoc formData file false "Client document"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind form for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reqDoc, reqFile, err := formFileUpload(c, "requirementDoc")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid requirementDoc upload: " + err.Error()})
		return
	}
	if reqFile != nil {
		defer reqFile.Close()
	}
	req.RequirementDoc = reqDoc

	clientDoc, clientFile, err := formFileUpload(c, "clientDoc")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clientDoc upload: " + err.Error()})
		return
	}
	if clientFile != nil {
		defer clientFile.Close()
	}
	req.ClientDoc = clientDoc

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create project"})
		}
		return
	}

	logger.Info("Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("project_code", project.ProjectCode))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Description Returns projects sorted newest first.
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list projects from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// getProjectByID godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProjectByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		} else {
			logger.Error("Failed to get project from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Description Accepts multipart form data. Replacement documents overwrite the stored blob under the same key; the project code never changes.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param projectName formData string false "Project name"
// @Param description formData string false "Description"
// @Param clientId formData string false "Client ID"
// @Param quotation formData string false "Quoted amount"
// @Param finalPrice formData string false "Agreed price"
// @Param requirementDoc formData file false "Replacement requirement document"
// @Param clientDoc formData file false "Replacement client document"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var req dto.UpdateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind form for UpdateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reqDoc, reqFile, err := formFileUpload(c, "requirementDoc")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid requirementDoc upload: " + err.Error()})
		return
	}
	if reqFile != nil {
		defer reqFile.Close()
	}
	req.RequirementDoc = reqDoc

	clientDoc, clientFile, err := formFileUpload(c, "clientDoc")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clientDoc upload: " + err.Error()})
		return
	}
	if clientFile != nil {
		defer clientFile.Close()
	}
	req.ClientDoc = clientDoc

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes the project record. Stored documents and tasks referencing the project are left in place.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		} else {
			logger.Error("Failed to delete project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete project"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
