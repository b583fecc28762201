package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSkillRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	skillHandler := handler.GetSkillHandler()

	e.GET("/v1/skills", skillHandler.ListSkillGroups)

	admin := e.Group("/v1/admin/skills")
	admin.Use(sessionMiddleware.RequireSession)
	admin.POST("", skillHandler.CreateSkillGroup)
	admin.PUT("/:id", skillHandler.UpdateSkillGroup)
	admin.DELETE("/:id", skillHandler.DeleteSkillGroup)
	admin.POST("/bulk-delete", skillHandler.BulkDeleteSkillGroups)
}
