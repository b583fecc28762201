package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupExperienceRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	experienceHandler := handler.GetExperienceHandler()

	e.GET("/v1/experiences", experienceHandler.ListExperiences)

	admin := e.Group("/v1/admin/experiences")
	admin.Use(sessionMiddleware.RequireSession)
	admin.POST("", experienceHandler.CreateExperience)
	admin.PUT("/:id", experienceHandler.UpdateExperience)
	admin.DELETE("/:id", experienceHandler.DeleteExperience)
	admin.POST("/bulk-delete", experienceHandler.BulkDeleteExperiences)
}
