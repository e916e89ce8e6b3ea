package bootstrap

import (
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService only verifies tokens; the marketplace issues them.
func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret)
}
