package handler

import (
	"portfolia/internal/usecase"
	"portfolia/pkg/response"
	"portfolia/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Submit reports success once the message is stored; notification
// delivery happens in the background and never fails this request.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	_, err := h.contactUseCase.Submit(c.Request().Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Message submitted successfully",
	})
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.contactUseCase.ListMessages(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pagination.Page, pagination.PageSize)
}

func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	if err := h.contactUseCase.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Contact message deleted",
	})
}
