package components

import (
	"movie-reservation/internal/infra/readstore"
	"movie-reservation/internal/infra/repository"
	"movie-reservation/internal/infra/sqlc"
	"movie-reservation/internal/usecase/commands"
	"movie-reservation/internal/usecase/queries"
	"movie-reservation/internal/usecase/shared"

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
	fx.Annotate(
		NewBeginner,
		fx.As(new(shared.Beginner)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
			fx.As(new(commands.ReservationViewReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Screening
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ScreeningQueries)),
		),
		fx.Annotate(
			repository.NewScreeningRepository,
			fx.As(new(commands.ScreeningRepository)),
			fx.As(new(queries.ScreeningLister)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReservationWriteQueries)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewBeginner(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
