package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCertificationRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	certificationHandler := handler.GetCertificationHandler()

	e.GET("/v1/certifications", certificationHandler.ListCertifications)

	admin := e.Group("/v1/admin/certifications")
	admin.Use(sessionMiddleware.RequireSession)
	admin.POST("", certificationHandler.CreateCertification)
	admin.PUT("/:id", certificationHandler.UpdateCertification)
	admin.DELETE("/:id", certificationHandler.DeleteCertification)
	admin.POST("/bulk-delete", certificationHandler.BulkDeleteCertifications)
}
