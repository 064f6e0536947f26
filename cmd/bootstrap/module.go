package bootstrap

import (
	"pet-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	CacheModule,
	ScheduleModule,
	components.PersistenceModule,
	components.UseCaseModule,
	BrokerModule,
	components.HandlerModule,
	fx.Invoke(VerifyDefaultResource),
)
