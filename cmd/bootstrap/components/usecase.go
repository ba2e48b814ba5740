package components

import (
	"shopfront/internal/pkg/clock"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewCheckoutFlowCommands,
		commands.NewWebhookCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
	),
)
