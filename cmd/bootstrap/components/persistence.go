package components

import (
	"riide-backend/internal/infra/db"
	"riide-backend/internal/infra/readstore"
	"riide-backend/internal/infra/uow"
	"riide-backend/internal/pkg/config"
	"riide-backend/internal/usecase/queries"
	"riide-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewRateReadStore,
			fx.As(new(queries.RateReadStore)),
		),
		fx.Annotate(
			NewExtrasReadStore,
			fx.As(new(queries.ExtrasReadStore)),
		),
		fx.Annotate(
			readstore.NewPromoReadStore,
			fx.As(new(queries.PromoReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
		),
		fx.Annotate(
			readstore.NewContentReadStore,
			fx.As(new(queries.ContentReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRateReadStore(dbtx db.DBTX, client *redis.Client, cfg config.Config) *readstore.RateReadStore {
	return readstore.NewRateReadStore(dbtx, client, cfg.Redis.CacheTTL)
}

func NewExtrasReadStore(dbtx db.DBTX, client *redis.Client, cfg config.Config) *readstore.ExtrasReadStore {
	return readstore.NewExtrasReadStore(dbtx, client, cfg.Redis.CacheTTL)
}

func NewVehicleReadStore(dbtx db.DBTX, client *redis.Client, cfg config.Config) *readstore.VehicleReadStore {
	return readstore.NewVehicleReadStore(dbtx, client, cfg.Redis.CacheTTL)
}
