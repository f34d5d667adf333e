package bootstrap

import (
	"ootd-commerce/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.OutboxModule,
	components.HandlerModule,
)
