package bootstrap

import (
	"egress/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is everything a dispatch pass or a CLI query needs.
var Module = fx.Options(
	ConfigModule,
	CoreModule,
)

// CoreModule is Module without configuration loading, for callers that supply
// their own config.Config.
var CoreModule = fx.Options(
	LoggerModule,
	DBModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// ServerModule adds the HTTP surface and the optional in-process scheduler.
var ServerModule = fx.Options(
	JWTModule,
	components.HandlerModule,
	SchedulerModule,
)
