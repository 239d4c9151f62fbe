package bootstrap

import (
	"playroom-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.PersistenceModule,
	components.UpstreamModule,
	components.UseCaseModule,
	components.HandlerModule,
)
