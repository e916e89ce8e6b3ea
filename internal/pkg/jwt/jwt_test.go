//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	svc := jwt.NewService("test-secret")

	t.Run("valid token becomes a session carrying the raw token", func(t *testing.T) {
		token, err := svc.GenerateToken("u-1", session.RoleTrainer, time.Hour)
		require.NoError(t, err)

		sess, err := svc.Session(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", sess.UserID())
		assert.Equal(t, session.RoleTrainer, sess.Role())
		assert.Equal(t, token, sess.BearerToken())
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken("u-1", session.RoleStudent, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Session(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other").GenerateToken("u-1", session.RoleStudent, time.Hour)
		require.NoError(t, err)

		_, err = svc.Session(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := jwt.Claims{
			UserID:           "u-1",
			Role:             "superuser",
			RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Session(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("none algorithm is refused", func(t *testing.T) {
		claims := jwt.Claims{UserID: "u-1", Role: "admin"}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Session(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Session("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
