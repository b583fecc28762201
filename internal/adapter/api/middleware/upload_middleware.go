package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolia/pkg/logger"
)

type UploadMiddleware struct {
	uploadSecret string
}

func NewUploadMiddleware(uploadSecret string) *UploadMiddleware {
	return &UploadMiddleware{
		uploadSecret: uploadSecret,
	}
}

// RequireUploadSecret enforces the storage collaborator's shared secret. A
// missing or wrong secret is a hard 401, deliberately distinct from the
// 400 a request without a file gets later.
func (m *UploadMiddleware) RequireUploadSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.uploadSecret == "" {
			logger.Error("UPLOAD_SECRET is not configured; all uploads will be denied")
			return echo.NewHTTPError(http.StatusUnauthorized, "Upload not authorized")
		}

		provided := c.Request().Header.Get("X-Upload-Secret")
		candidate := sha256.Sum256([]byte(provided))
		expected := sha256.Sum256([]byte(m.uploadSecret))
		if subtle.ConstantTimeCompare(candidate[:], expected[:]) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "Upload not authorized")
		}

		return next(c)
	}
}
