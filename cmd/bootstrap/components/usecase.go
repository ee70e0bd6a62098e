package components

import (
	"toolshed/internal/pkg/clock"
	"toolshed/internal/usecase"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewToolQueries,
		queries.NewReviewQueries,
		queries.NewReportQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewToolCommands,
		commands.NewReviewCommands,
		commands.NewReportCommands,
	),
)
