package bootstrap

import (
	"context"
	"log/slog"

	"egress/internal/infra/db"
	"egress/internal/pkg/config"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*db.Handle, error) {
	handle, cleanup, err := db.Open(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database opened", "driver", handle.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return handle, nil
}

// MigrateOnStart applies pending migrations before the rest of the app starts.
// Register it ahead of any module whose OnStart touches the schema.
func MigrateOnStart(lc fx.Lifecycle, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.RunMigrations(ctx, cfg.DB)
		},
	})
}
