package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/pkg/errors"
)

func newTestAuth(code string, ttl time.Duration) (*AuthUseCase, *time.Time) {
	uc := NewAuthUseCase(code, ttl)
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return current }
	return uc, &current
}

func TestLoginMintsTokenForCorrectCode(t *testing.T) {
	uc, _ := newTestAuth("s3cret", 30*time.Minute)

	token, err := uc.Login("s3cret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, uc.ValidateSession(token))
}

func TestLoginDenialIsGeneric(t *testing.T) {
	uc, _ := newTestAuth("s3cret", 30*time.Minute)

	_, wrongErr := uc.Login("guess")
	require.Error(t, wrongErr)

	appErr, ok := wrongErr.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "Access denied", appErr.Message)

	// A server with no code configured denies with the identical message.
	unconfigured, _ := newTestAuth("", 30*time.Minute)
	_, missingErr := unconfigured.Login("s3cret")
	require.Error(t, missingErr)
	assert.Equal(t, wrongErr.Error(), missingErr.Error())
}

func TestLoginDeniesEmptyCodeWhenUnconfigured(t *testing.T) {
	uc, _ := newTestAuth("", 30*time.Minute)

	// Even a matching empty string must not authenticate.
	_, err := uc.Login("")
	assert.Error(t, err)
}

func TestSessionSlidingExpiry(t *testing.T) {
	uc, current := newTestAuth("s3cret", 30*time.Minute)

	token, err := uc.Login("s3cret")
	require.NoError(t, err)

	// 29 minutes of inactivity: still valid, and the window slides.
	*current = current.Add(29 * time.Minute)
	assert.True(t, uc.ValidateSession(token))

	// Another 29 minutes from the refreshed activity: still valid.
	*current = current.Add(29 * time.Minute)
	assert.True(t, uc.ValidateSession(token))

	// Past the window with no activity: expired, and stays expired.
	*current = current.Add(31 * time.Minute)
	assert.False(t, uc.ValidateSession(token))
	assert.False(t, uc.ValidateSession(token))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	uc, _ := newTestAuth("s3cret", 30*time.Minute)

	token, err := uc.Login("s3cret")
	require.NoError(t, err)

	uc.Logout(token)
	assert.False(t, uc.ValidateSession(token))

	// Logging out an unknown token is a no-op.
	uc.Logout("not-a-token")
}

func TestValidateSessionUnknownToken(t *testing.T) {
	uc, _ := newTestAuth("s3cret", 30*time.Minute)

	assert.False(t, uc.ValidateSession("never-issued"))
}
