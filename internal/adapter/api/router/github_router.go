package router

import (
	"portfolia/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupGithubRouter(e *echo.Echo) {
	githubHandler := handler.GetGithubHandler()

	e.GET("/v1/github/showcase", githubHandler.GetShowcase)
}
