package bootstrap

import (
	"internship-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
