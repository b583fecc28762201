package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

// AuthUseCase is the admin session guard: one shared secret, opaque
// session tokens, and a sliding inactivity expiry. Sessions live in
// memory only and do not survive a restart.
type AuthUseCase struct {
	accessCode string
	ttl        time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewAuthUseCase(accessCode string, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{
		accessCode: accessCode,
		ttl:        ttl,
		now:        time.Now,
		sessions:   make(map[string]time.Time),
	}
}

// Login verifies the candidate code and mints a session token. The denial
// is generic on purpose: a wrong code and a missing server secret look
// identical to the caller.
func (uc *AuthUseCase) Login(code string) (string, error) {
	if uc.accessCode == "" {
		// Server misconfiguration, not a caller problem; log it loudly
		// but leak nothing.
		logger.Error("ADMIN_ACCESS_CODE is not configured; all admin logins will be denied")
		return "", errors.Unauthorized("Access denied", nil)
	}

	candidate := sha256.Sum256([]byte(code))
	expected := sha256.Sum256([]byte(uc.accessCode))
	if subtle.ConstantTimeCompare(candidate[:], expected[:]) != 1 {
		return "", errors.Unauthorized("Access denied", nil)
	}

	token := uuid.New().String()

	uc.mu.Lock()
	uc.sessions[token] = uc.now()
	uc.mu.Unlock()

	return token, nil
}

// ValidateSession reports whether the token names a live session and, when
// it does, slides the inactivity window forward.
func (uc *AuthUseCase) ValidateSession(token string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lastActivity, ok := uc.sessions[token]
	if !ok {
		return false
	}

	if uc.now().Sub(lastActivity) > uc.ttl {
		delete(uc.sessions, token)
		return false
	}

	uc.sessions[token] = uc.now()
	return true
}

func (uc *AuthUseCase) Logout(token string) {
	uc.mu.Lock()
	delete(uc.sessions, token)
	uc.mu.Unlock()
}

// SessionTTL exposes the policy so the login response can tell the client
// how long inactivity is tolerated.
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return uc.ttl
}
