package bootstrap

import (
	"context"
	"log/slog"

	"egress/internal/infra/scheduler"
	"egress/internal/pkg/config"
	"egress/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs dispatch passes in-process when SCHEDULER_ENABLED is set.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, dispatch commands.DispatchCommands, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		return nil
	}

	s, err := scheduler.New(cfg.Scheduler.Spec, dispatch, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return nil
}
