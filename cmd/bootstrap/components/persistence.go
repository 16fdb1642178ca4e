package components

import (
	"log/slog"

	"facility-booking/internal/infra/cache"
	"facility-booking/internal/infra/postgres"
	"facility-booking/internal/infra/readstore"
	"facility-booking/internal/infra/uow"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		readstore.NewCatalogReadStore,
		fx.Annotate(
			NewCachedCatalog,
			fx.As(new(shared.CatalogReader)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Reservation repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *postgres.Queries {
	return postgres.New()
}

func NewDBTX(pool *pgxpool.Pool) postgres.DBTX {
	return pool
}

func NewCachedCatalog(store *readstore.CatalogReadStore, client *redis.Client, cfg config.Config, logger *slog.Logger) *cache.CatalogCache {
	return cache.NewCatalogCache(store, client, cfg.Booking.SnapshotTTL, logger)
}
