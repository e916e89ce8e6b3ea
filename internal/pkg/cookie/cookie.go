package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken returns the token from the Authorization header, falling back
// to the named cookie the SPA may carry instead.
func BearerToken(c *gin.Context, cookieName string) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if cookieName == "" {
		return ""
	}
	token, _ := c.Cookie(cookieName)
	return token
}
