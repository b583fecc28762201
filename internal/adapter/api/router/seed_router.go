package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSeedRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	seedHandler := handler.GetSeedHandler()

	admin := e.Group("/v1/admin/seed")
	admin.Use(sessionMiddleware.RequireSession)
	admin.POST("", seedHandler.Import)
}
