package middleware

import (
	"log/slog"
	"net/http"

	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/cookie"
	"internship-checkout/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionProvider turns a raw bearer token into a session.
type SessionProvider interface {
	Session(token string) (session.Session, error)
}

type AuthMiddleware struct {
	sessions   SessionProvider
	cookieName string
}

const ctxSessionKey = "session"

func NewAuthMiddleware(sessions *jwt.Service, cfg config.JWTConfig) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookieName: cfg.CookieName}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.BearerToken(c, m.cookieName)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		sess, err := m.sessions.Session(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		SetSession(c, sess)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			// should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !sess.Role().AtLeast(minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SetSession is used by RequireAuth and by tests that fake authentication.
func SetSession(c *gin.Context, sess session.Session) {
	c.Set(ctxSessionKey, sess)
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

func GetUserID(c *gin.Context) (string, bool) {
	sess, ok := GetSession(c)
	if !ok || sess.UserID() == "" {
		return "", false
	}
	return sess.UserID(), true
}
