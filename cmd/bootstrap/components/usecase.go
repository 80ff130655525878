package components

import (
	"egress/internal/infra/servicelink"
	"egress/internal/pkg/clock"
	"egress/internal/pkg/config"
	"egress/internal/pkg/magichash"
	"egress/internal/usecase/commands"
	"egress/internal/usecase/queries"
	"egress/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		magichash.NewGenerator,
		fx.As(new(shared.TokenGenerator)),
	),
	fx.Annotate(
		servicelink.NewDefaultResolver,
		fx.As(new(shared.ServiceURLResolver)),
	),
	NewDispatchOptions,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReminderUseCase,
		commands.NewDispatchProcessor,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReminderQueries,
	),
)

func NewDispatchOptions(cfg config.Config) commands.DispatchOptions {
	return commands.DispatchOptions{
		Concurrency:   cfg.Dispatch.Concurrency,
		NotifyTimeout: cfg.Dispatch.NotifyTimeout,
	}
}
