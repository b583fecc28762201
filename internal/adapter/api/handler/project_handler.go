package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
	store          *content.Store
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase, store *content.Store) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		store:          store,
	}
}

type projectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	Github      string   `json:"github" validate:"omitempty,url"`
	Live        string   `json:"live" validate:"omitempty,url"`
	AIHint      string   `json:"ai_hint"`
	Order       int      `json:"order"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// ListProjects serves the live feed: seed data until the first snapshot,
// the latest snapshot afterwards.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.Projects.Value(),
		"loading": h.store.Projects.Loading(),
	})
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	return h.save(c, "")
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *ProjectHandler) save(c echo.Context, id string) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.Save(c.Request().Context(), id, usecase.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Tags:        req.Tags,
		Github:      req.Github,
		Live:        req.Live,
		AIHint:      req.AIHint,
		Order:       req.Order,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if id == "" {
		return response.Created(c, project)
	}
	return response.Success(c, project)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	if err := h.projectUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Project deleted successfully",
	})
}

func (h *ProjectHandler) BulkDeleteProjects(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcomes := h.projectUseCase.BulkDelete(c.Request().Context(), req.IDs)

	return response.Success(c, map[string]interface{}{
		"results": outcomes,
	})
}
