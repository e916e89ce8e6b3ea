package components

import (
	"context"

	"internship-checkout/internal/handler"
	"internship-checkout/internal/handler/api"
	"internship-checkout/internal/handler/middleware"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewSupportHandler,
		NewAuthMiddleware,
		NewCouponRateLimiter,
	),
	fx.Invoke(registerRoutes),
)

func NewAuthMiddleware(sessions *jwt.Service, cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(sessions, cfg.JWT)
}

func NewCouponRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.CouponRateLimiter {
	limiter := middleware.NewCouponRateLimiter(cfg.RateLimit)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			limiter.Stop()
			return nil
		},
	})
	return limiter
}

func registerRoutes(
	engine *gin.Engine,
	cfg config.Config,
	reg *prometheus.Registry,
	checkout *api.CheckoutHandler,
	support *api.SupportHandler,
	logging *middleware.Logger,
	auth *middleware.AuthMiddleware,
	couponLimit *middleware.CouponRateLimiter,
) {
	handler.NewRouter(engine, cfg, reg,
		handler.Handlers{Checkout: checkout, Support: support},
		handler.Middlewares{Logging: logging, Auth: auth, CouponLimit: couponLimit},
	)
}
