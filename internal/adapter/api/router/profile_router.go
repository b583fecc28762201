package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	profileHandler := handler.GetProfileHandler()

	e.GET("/v1/profile", profileHandler.GetProfile)

	admin := e.Group("/v1/admin/profile")
	admin.Use(sessionMiddleware.RequireSession)
	admin.PUT("", profileHandler.UpdateProfile)
}
