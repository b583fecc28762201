package handler

import (
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Code string `json:"code" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.Login(req.Code)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token":              token,
		"expires_in_minutes": int(h.authUseCase.SessionTTL().Minutes()),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := c.Get("session_token").(string); ok {
		h.authUseCase.Logout(token)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Logged out",
	})
}
