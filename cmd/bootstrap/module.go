package bootstrap

import (
	"campaign-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	JWTModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
