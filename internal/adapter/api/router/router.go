package router

import (
	"portfolia/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	sessionMiddleware *middleware.SessionMiddleware,
	uploadMiddleware *middleware.UploadMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	SetupAuthRouter(e, sessionMiddleware)
	SetupProjectRouter(e, sessionMiddleware)
	SetupSkillRouter(e, sessionMiddleware)
	SetupExperienceRouter(e, sessionMiddleware)
	SetupEducationRouter(e, sessionMiddleware)
	SetupCertificationRouter(e, sessionMiddleware)
	SetupTestimonialRouter(e, sessionMiddleware)
	SetupProfileRouter(e, sessionMiddleware)
	SetupContactRouter(e, sessionMiddleware, rateLimitMiddleware)
	SetupGithubRouter(e)
	SetupSeedRouter(e, sessionMiddleware)
	SetupFileRouter(e, sessionMiddleware, uploadMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
