package components

import (
	"internship-checkout/internal/pkg/clock"
	"internship-checkout/internal/usecase/commands"
	"internship-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
		// commands refresh through the same queries instance
		func(q queries.CheckoutQueries) queries.Refresher { return q },
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
	),
)
