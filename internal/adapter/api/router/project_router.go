package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProjectRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	projectHandler := handler.GetProjectHandler()

	e.GET("/v1/projects", projectHandler.ListProjects)

	admin := e.Group("/v1/admin/projects")
	admin.Use(sessionMiddleware.RequireSession)
	admin.POST("", projectHandler.CreateProject)
	admin.PUT("/:id", projectHandler.UpdateProject)
	admin.DELETE("/:id", projectHandler.DeleteProject)
	admin.POST("/bulk-delete", projectHandler.BulkDeleteProjects)
}
