package bootstrap

import (
	"furnistore/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.StateModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
