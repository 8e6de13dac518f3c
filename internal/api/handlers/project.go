package handlers

import (
	"net/http"
	"strings"

	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// PublicProjectResponse is the project view shown to voters
type PublicProjectResponse struct {
	ID         string `json:"id"`
	TeamNumber string `json:"teamNumber"`
	Title      string `json:"title"`
	Sector     string `json:"sector"`
	Department string `json:"department"`
}

// GetProject handles GET /api/projects/:projectId
// @Summary Get a project
// @Description Public project details shown on the voting page
// @Tags projects
// @Produce json
// @Param projectId path string true "Project id (team number)"
// @Success 200 {object} PublicProjectResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetByID(c, c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PublicProjectResponse{
		ID:         project.ID,
		TeamNumber: project.TeamNumber,
		Title:      project.Title,
		Sector:     project.Sector,
		Department: project.Department,
	})
}

// ListProjects handles GET /api/admin/projects
// @Summary List projects
// @Description List every registered project with its voting and QR links
// @Tags admin
// @Produce json
// @Success 200 {array} service.ProjectResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/admin/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject handles POST /api/admin/projects
// @Summary Create a project
// @Description Register a project; its QR code is rendered and stored
// @Tags admin
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project"
// @Success 201 {object} service.ProjectResponse
// @Failure 400 {object} ErrorResponse "Invalid project"
// @Failure 409 {object} ErrorResponse "Project already exists"
// @Security BearerAuth
// @Router /api/admin/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	project, err := h.projectService.Create(c, &req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /api/admin/projects/:projectId
// @Summary Update a project
// @Description Change title, sector or department. The team number cannot change.
// @Tags admin
// @Accept json
// @Produce json
// @Param projectId path string true "Project id (team number)"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} service.ProjectResponse
// @Failure 400 {object} ErrorResponse "Invalid update"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/admin/projects/{projectId} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	project, err := h.projectService.Update(c, c.Param("projectId"), &req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/admin/projects/:projectId
// @Summary Delete a project
// @Description Delete a project together with its votes and QR code
// @Tags admin
// @Param projectId path string true "Project id (team number)"
// @Success 204 "Project deleted"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /api/admin/projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.Delete(c, c.Param("projectId"), actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QRCode handles GET /qr/:file where file is "<projectId>.png"
// @Summary Project QR code
// @Description PNG QR code linking to the project's voting page
// @Tags projects
// @Produce png
// @Param file path string true "<projectId>.png"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /qr/{file} [get]
func (h *ProjectHandler) QRCode(c *gin.Context) {
	projectID, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok || projectID == "" {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		return
	}

	png, err := h.projectService.QRCode(c, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	// QR images are embedded cross-origin by the front-end
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}
