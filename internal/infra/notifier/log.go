package notifier

import (
	"context"
	"log/slog"

	"egress/internal/domain/reminder"
	"egress/internal/usecase/shared"
)

// LogNotifier renders messages and writes them to the log instead of sending
// them. It is selected when no Resend API key is configured.
type LogNotifier struct {
	composer *Composer
	logger   *slog.Logger
}

func NewLogNotifier(composer *Composer, logger *slog.Logger) *LogNotifier {
	return &LogNotifier{composer: composer, logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, intent shared.Intent, r *reminder.Reminder) error {
	msg, err := n.composer.Compose(intent, r)
	if err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "email not sent (log notifier)",
		"intent", string(intent),
		"reminder_id", r.ID(),
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text)
	return nil
}
