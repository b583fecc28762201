package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, sessionMiddleware.RequireSession)
}
