package router

import (
	"portfolia/internal/adapter/api/handler"
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupTestimonialRouter(e *echo.Echo, sessionMiddleware *middleware.SessionMiddleware) {
	testimonialHandler := handler.GetTestimonialHandler()

	// Public surface only ever sees approved testimonials.
	e.GET("/v1/testimonials", testimonialHandler.ListApproved)
	e.POST("/v1/testimonials", testimonialHandler.Submit)

	admin := e.Group("/v1/admin/testimonials")
	admin.Use(sessionMiddleware.RequireSession)
	admin.GET("", testimonialHandler.ListAll)
	admin.PUT("/:id", testimonialHandler.UpdateTestimonial)
	admin.PATCH("/:id/approval", testimonialHandler.SetApproval)
	admin.DELETE("/:id", testimonialHandler.DeleteTestimonial)
	admin.POST("/bulk-delete", testimonialHandler.BulkDeleteTestimonials)
}
