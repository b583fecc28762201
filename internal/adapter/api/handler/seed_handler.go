package handler

import (
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type SeedHandler struct {
	seedUseCase *usecase.SeedUseCase
}

func NewSeedHandler(seedUseCase *usecase.SeedUseCase) *SeedHandler {
	return &SeedHandler{
		seedUseCase: seedUseCase,
	}
}

func (h *SeedHandler) Import(c echo.Context) error {
	result := h.seedUseCase.Import(c.Request().Context())
	return response.Success(c, result)
}
