package bootstrap

import (
	"shopfront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	GatewayModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
