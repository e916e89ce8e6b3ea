package middleware

import (
	"net/http"
	"time"

	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/rate"

	"github.com/gin-gonic/gin"
)

// CouponRateLimiter throttles coupon checks per signed-in user so codes
// cannot be enumerated through this service.
type CouponRateLimiter struct {
	limiter *rate.Limiter
}

func NewCouponRateLimiter(cfg config.RateLimitConfig) *CouponRateLimiter {
	expiry := time.Duration(cfg.ExpiryMin) * time.Minute
	return &CouponRateLimiter{limiter: rate.NewLimiter(cfg.CouponBurst, expiry, cfg.CouponRPS)}
}

// Handler must run after RequireAuth; anonymous requests fall back to the client IP.
func (r *CouponRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := GetUserID(c)
		if !ok {
			key = "ip:" + c.ClientIP()
		}
		if !r.limiter.Allow(key) {
			c.Header("Retry-After", "2")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Too many coupon attempts. Please wait a moment and try again."},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *CouponRateLimiter) Stop() {
	r.limiter.Stop()
}
