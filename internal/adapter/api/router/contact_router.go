package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupContactRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	contactHandler := handler.GetContactHandler()

	e.POST("/v1/contact", contactHandler.Submit, rateLimitMiddleware.LimitByIP)

	admin := e.Group("/v1/admin/contact-messages")
	admin.Use(sessionMiddleware.RequireSession)
	admin.GET("", contactHandler.ListMessages)
	admin.DELETE("/:id", contactHandler.DeleteMessage)
}
