//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the marketplace does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string, role session.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, role session.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}

// SessionCookie carries the token the way the browser sends it.
func (h *JWTHelper) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: h.cfg.CookieName, Value: token, Path: "/"}
}
