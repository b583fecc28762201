package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type ExperienceHandler struct {
	experienceUseCase *usecase.ExperienceUseCase
	store             *content.Store
}

func NewExperienceHandler(experienceUseCase *usecase.ExperienceUseCase, store *content.Store) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUseCase: experienceUseCase,
		store:             store,
	}
}

type experienceRequest struct {
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.Experiences.Value(),
		"loading": h.store.Experiences.Loading(),
	})
}

func (h *ExperienceHandler) CreateExperience(c echo.Context) error {
	return h.save(c, "")
}

func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *ExperienceHandler) save(c echo.Context, id string) error {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	experience, err := h.experienceUseCase.Save(c.Request().Context(), id, usecase.ExperienceInput{
		Company:     req.Company,
		Role:        req.Role,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if id == "" {
		return response.Created(c, experience)
	}
	return response.Success(c, experience)
}

func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	if err := h.experienceUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Experience deleted successfully",
	})
}

func (h *ExperienceHandler) BulkDeleteExperiences(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcomes := h.experienceUseCase.BulkDelete(c.Request().Context(), req.IDs)

	return response.Success(c, map[string]interface{}{
		"results": outcomes,
	})
}
