package bootstrap

import (
	"context"
	"log/slog"

	"egress/internal/infra/notifier"
	"egress/internal/pkg/config"
	"egress/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewComposer,
		NewNotifier,
		fx.Annotate(
			NewConfirmationQueue,
			fx.As(new(shared.ConfirmationQueue)),
		),
	),
)

func NewComposer(cfg config.Config) (*notifier.Composer, error) {
	return notifier.NewComposer(cfg.Server.AppURL)
}

func NewNotifier(cfg config.Config, composer *notifier.Composer, logger *slog.Logger) shared.Notifier {
	if cfg.Mail.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY is not set; emails will be logged instead of sent")
		return notifier.NewLogNotifier(composer, logger)
	}
	return notifier.NewResendNotifier(cfg.Mail.ResendAPIKey, cfg.Mail.From, composer, logger)
}

func NewConfirmationQueue(lc fx.Lifecycle, cfg config.Config, n shared.Notifier, logger *slog.Logger) *notifier.ConfirmationQueue {
	q := notifier.NewConfirmationQueue(n, logger, cfg.Mail.QueueSize, cfg.Mail.Workers, cfg.Mail.SendTimeout)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			q.Start()
			return nil
		},
		OnStop: q.Stop,
	})

	return q
}
