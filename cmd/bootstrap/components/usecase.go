package components

import (
	"time"

	"movie-reservation/internal/domain/reservation"
	"movie-reservation/internal/pkg/clock"
	"movie-reservation/internal/pkg/config"
	"movie-reservation/internal/usecase"
	"movie-reservation/internal/usecase/commands"
	"movie-reservation/internal/usecase/queries"
	"movie-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewAgency,
	func(cfg config.Config) (*time.Location, error) {
		return cfg.Schedule.Location()
	},
	func(db shared.Beginner, cfg config.Config) shared.TxManager {
		return shared.NewTxManager(db, cfg.Schedule.TxMaxRetries)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScreeningQueries,
		func(repo queries.ReservationViewRepo, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(repo, cfg.Schedule.ListLimit)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
