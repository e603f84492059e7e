package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/pkg/response"
	"github.com/linskybing/bugtrack-go/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

type projectListResponse struct {
	Projects []project.WithTicketCount `json:"projects"`
	Total    int64                     `json:"total"`
}

// CreateProject godoc
// @Summary Create project (admin only)
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.CreateProjectDTO true "Project info"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Name missing"
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Project name is required"})
		return
	}

	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	proj, err := h.svc.CreateProject(principal, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proj)
}

// GetProjects godoc
// @Summary List projects with ticket counts
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {object} projectListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	projects, total, err := h.svc.ListProjects(principal)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectListResponse{Projects: projects, Total: total})
}

// DeleteProject godoc
// @Summary Delete project and its tickets (admin only)
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	if err := h.svc.DeleteProject(principal, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project and related tickets deleted successfully"})
}
