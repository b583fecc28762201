package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
)

type SessionMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewSessionMiddleware(authUseCase *usecase.AuthUseCase) *SessionMiddleware {
	return &SessionMiddleware{
		authUseCase: authUseCase,
	}
}

// RequireSession gates admin routes behind a live session token. Every
// accepted request slides the inactivity window forward.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token := parts[1]
		if !m.authUseCase.ValidateSession(token) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
		}

		c.Set("session_token", token)

		return next(c)
	}
}
