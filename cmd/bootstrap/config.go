package bootstrap

import (
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		shared.NewBookingPolicy,
	),
)
