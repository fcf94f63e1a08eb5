package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests for projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(projectService portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: projectService}
}

// convertQuote godoc
// @Summary Convert a paid quote into a project
// @Description Creates the single project for a PAID quote; a quote converts at most once
// @Tags projects
// @Accept json
// @Produce json
// @Param quoteID path string true "Quote ID"
// @Param project body dto.ConvertQuoteRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 409 {object} map[string]string "Quote already converted"
// @Failure 422 {object} map[string]string "Quote is not paid"
// @Router /quotes/{quoteID}/convert [post]
func (h *projectHandler) convertQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")

	var req dto.ConvertQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for convertQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.projectService.ConvertQuoteToProject(c.Request.Context(), quoteID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert quote")
		return
	}

	logger.Info("Quote converted to project",
		slog.String("quote_id", quoteID),
		slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// registerProjectRoutes registers project specific routes
func registerProjectRoutes(group *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	group.POST("/quotes/:quoteID/convert", h.convertQuote)
	group.GET("/projects/:projectID", h.getProject)
}
