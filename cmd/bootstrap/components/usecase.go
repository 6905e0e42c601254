package components

import (
	"driveshare/internal/infra/presence"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/usecase"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationUseCase,
		commands.NewVehicleUseCase,
		commands.NewReviewUseCase,
		func(store *presence.Store) commands.PresenceStore { return store },
		commands.NewPresenceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVehicleQueries,
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewCalendarQueries,
		queries.NewReviewQueries,
		func(store *presence.Store) queries.PresenceCounter { return store },
		queries.NewPresenceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
