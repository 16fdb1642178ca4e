package components

import (
	"log/slog"

	"facility-booking/internal/handler"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewGroupHandler,
		api.NewResourceHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, logger *slog.Logger) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.Booking.RateLimitPerMinute, logger)
		},
		func(r *api.ReservationHandler, g *api.GroupHandler, res *api.ResourceHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Group: g, Resource: res}
		},
		func(a *middleware.AuthMiddleware, rl *middleware.RateLimiter, l *middleware.Logger) handler.Middlewares {
			return handler.Middlewares{Auth: a, RateLimit: rl, Logger: l}
		},
	),
	fx.Invoke(handler.NewRouter),
)
