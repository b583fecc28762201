package handler

import (
	"portfolia/internal/content"
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type SkillHandler struct {
	skillUseCase *usecase.SkillUseCase
	store        *content.Store
}

func NewSkillHandler(skillUseCase *usecase.SkillUseCase, store *content.Store) *SkillHandler {
	return &SkillHandler{
		skillUseCase: skillUseCase,
		store:        store,
	}
}

type skillGroupRequest struct {
	Title  string   `json:"title" validate:"required"`
	Icon   string   `json:"icon" validate:"required"`
	Skills []string `json:"skills" validate:"required,min=1"`
}

func (h *SkillHandler) ListSkillGroups(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"items":   h.store.SkillGroups.Value(),
		"loading": h.store.SkillGroups.Loading(),
	})
}

func (h *SkillHandler) CreateSkillGroup(c echo.Context) error {
	return h.save(c, "")
}

func (h *SkillHandler) UpdateSkillGroup(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *SkillHandler) save(c echo.Context, id string) error {
	var req skillGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	group, err := h.skillUseCase.Save(c.Request().Context(), id, usecase.SkillGroupInput{
		Title:  req.Title,
		Icon:   req.Icon,
		Skills: req.Skills,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if id == "" {
		return response.Created(c, group)
	}
	return response.Success(c, group)
}

func (h *SkillHandler) DeleteSkillGroup(c echo.Context) error {
	if err := h.skillUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Skill group deleted successfully",
	})
}

func (h *SkillHandler) BulkDeleteSkillGroups(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcomes := h.skillUseCase.BulkDelete(c.Request().Context(), req.IDs)

	return response.Success(c, map[string]interface{}{
		"results": outcomes,
	})
}
