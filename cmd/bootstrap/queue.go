package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"facility-booking/internal/infra/queue"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/shared"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewAsynqClient,
		fx.Annotate(
			func(c *asynq.Client) *queue.Publisher { return queue.NewPublisher(c) },
			fx.As(new(shared.EventPublisher)),
		),
		fx.Annotate(
			queue.NewLogNotifier,
			fx.As(new(queue.Notifier)),
		),
	),
	fx.Invoke(StartNotificationWorker),
)

func redisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.QueueDB,
	}
}

func NewAsynqClient(lc fx.Lifecycle, cfg config.Config) *asynq.Client {
	client := asynq.NewClient(redisOpt(cfg))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

// StartNotificationWorker consumes status change notifications in-process.
func StartNotificationWorker(lc fx.Lifecycle, cfg config.Config, notifier queue.Notifier, logger *slog.Logger) {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			queue.QueueNotifications: 1,
		},
		Logger:   newAsynqLogger(logger),
		LogLevel: asynq.WarnLevel,
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting notification worker", "queue", queue.QueueNotifications)
			return srv.Start(queue.NewServeMux(notifier))
		},
		OnStop: func(_ context.Context) error {
			srv.Shutdown()
			return nil
		},
	})
}

// asynqLogger adapts slog to asynq.Logger.
type asynqLogger struct {
	l *slog.Logger
}

func newAsynqLogger(l *slog.Logger) asynqLogger {
	return asynqLogger{l: l.With("component", "asynq")}
}

func (a asynqLogger) Debug(args ...any) { a.l.Debug(fmt.Sprint(args...)) }
func (a asynqLogger) Info(args ...any)  { a.l.Info(fmt.Sprint(args...)) }
func (a asynqLogger) Warn(args ...any)  { a.l.Warn(fmt.Sprint(args...)) }
func (a asynqLogger) Error(args ...any) { a.l.Error(fmt.Sprint(args...)) }
func (a asynqLogger) Fatal(args ...any) { a.l.Error(fmt.Sprint(args...)) }
