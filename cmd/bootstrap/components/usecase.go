package components

import (
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/jwt"
	"ootd-commerce/internal/usecase"
	"ootd-commerce/internal/usecase/commands"
	"ootd-commerce/internal/usecase/queries"

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
	func(s *jwt.Service) commands.TokenService { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewCouponCommands,
		commands.NewRatingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewCouponQueries,
		queries.NewRatingQueries,
		queries.NewSalesQueries,
		queries.NewStoreQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
