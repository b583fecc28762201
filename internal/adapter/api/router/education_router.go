package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupEducationRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	educationHandler := handler.GetEducationHandler()

	e.GET("/v1/educations", educationHandler.ListEducations)

	admin := e.Group("/v1/admin/educations")
	admin.Use(sessionMiddleware.RequireSession)
	admin.POST("", educationHandler.CreateEducation)
	admin.PUT("/:id", educationHandler.UpdateEducation)
	admin.DELETE("/:id", educationHandler.DeleteEducation)
	admin.POST("/bulk-delete", educationHandler.BulkDeleteEducations)
}
