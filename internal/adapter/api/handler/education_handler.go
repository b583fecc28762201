package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type EducationHandler struct {
	educationUseCase *usecase.EducationUseCase
	store            *content.Store
}

func NewEducationHandler(educationUseCase *usecase.EducationUseCase, store *content.Store) *EducationHandler {
	return &EducationHandler{
		educationUseCase: educationUseCase,
		store:            store,
	}
}

type educationRequest struct {
	School      string `json:"school" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Year        string `json:"year" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (h *EducationHandler) ListEducations(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.Educations.Value(),
		"loading": h.store.Educations.Loading(),
	})
}

func (h *EducationHandler) CreateEducation(c echo.Context) error {
	return h.save(c, "")
}

func (h *EducationHandler) UpdateEducation(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *EducationHandler) save(c echo.Context, id string) error {
	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	education, err := h.educationUseCase.Save(c.Request().Context(), id, usecase.EducationInput{
		School:      req.School,
		Degree:      req.Degree,
		Year:        req.Year,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if id == "" {
		return response.Created(c, education)
	}
	return response.Success(c, education)
}

func (h *EducationHandler) DeleteEducation(c echo.Context) error {
	if err := h.educationUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Education deleted successfully",
	})
}

func (h *EducationHandler) BulkDeleteEducations(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcomes := h.educationUseCase.BulkDelete(c.Request().Context(), req.IDs)

	return response.Success(c, map[string]interface{}{
		"results": outcomes,
	})
}
