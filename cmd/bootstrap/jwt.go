package bootstrap

import (
	"time"

	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// tokens are only verified here, so the issuing duration is nominal
const verifyOnlyTokenDuration = time.Hour

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, verifyOnlyTokenDuration)
}
