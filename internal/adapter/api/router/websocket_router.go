package router

import (
	"portfolia/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo) {
	wsHandler := handler.GetWebSocketHandler()

	e.GET("/v1/ws/content", wsHandler.HandleContentStream)
}
