package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/adapter/api"
	"portfolia/internal/adapter/api/handler"
	apimiddleware "portfolia/internal/adapter/api/middleware"
	"portfolia/internal/usecase"
)

func newTestServer(accessCode string) (*echo.Echo, *usecase.AuthUseCase) {
	authUseCase := usecase.NewAuthUseCase(accessCode, 30*time.Minute)
	sessionMiddleware := apimiddleware.NewSessionMiddleware(authUseCase)

	handler.SetupHealthHandler()
	authHandler := handler.NewAuthHandler(authUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()

	e.GET("/health", handler.GetHealthHandler().CheckHealth)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/logout", authHandler.Logout, sessionMiddleware.RequireSession)

	admin := e.Group("/v1/admin")
	admin.Use(sessionMiddleware.RequireSession)
	admin.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e, authUseCase
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")
}

func TestAdminRoutesRejectMissingToken(t *testing.T) {
	e, _ := newTestServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectBogusToken(t *testing.T) {
	e, _ := newTestServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginThenAccessAdminRoute(t *testing.T) {
	e, _ := newTestServer("s3cret")

	body := strings.NewReader(`{"code":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Token            string `json:"token"`
			ExpiresInMinutes int    `json:"expires_in_minutes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, 30, envelope.Data.ExpiresInMinutes)

	adminReq := httptest.NewRequest(http.MethodGet, "/v1/admin/ping", nil)
	adminReq.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	adminRec := httptest.NewRecorder()
	e.ServeHTTP(adminRec, adminReq)

	assert.Equal(t, http.StatusOK, adminRec.Code)
}

func TestLoginWrongCodeIsGenericDenial(t *testing.T) {
	e, _ := newTestServer("s3cret")

	body := strings.NewReader(`{"code":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied")
	assert.NotContains(t, rec.Body.String(), "s3cret")
}

func TestLogoutEndsSession(t *testing.T) {
	e, authUseCase := newTestServer("s3cret")

	token, err := authUseCase.Login("s3cret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, authUseCase.ValidateSession(token))
}
