package handler

import (
	"portfolia/internal/usecase"
	"portfolia/pkg/response"

	"github.com/labstack/echo/v4"
)

type GithubHandler struct {
	githubUseCase *usecase.GithubUseCase
}

func NewGithubHandler(githubUseCase *usecase.GithubUseCase) *GithubHandler {
	return &GithubHandler{
		githubUseCase: githubUseCase,
	}
}

func (h *GithubHandler) GetShowcase(c echo.Context) error {
	return response.Success(c, h.githubUseCase.GetShowcase(c.Request().Context()))
}
