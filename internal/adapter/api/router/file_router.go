package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware, uploadMiddleware *middleware.UploadMiddleware) {
	fileHandler := handler.GetFileHandler()

	uploads := e.Group("/v1/admin/uploads")
	uploads.Use(sessionMiddleware.RequireSession)
	uploads.GET("", fileHandler.ListFiles)
	uploads.POST("", fileHandler.UploadFile, uploadMiddleware.RequireUploadSecret)
}
