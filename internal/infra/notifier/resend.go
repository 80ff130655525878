package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"egress/internal/domain/reminder"
	"egress/internal/usecase/shared"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the part of the Resend client the notifier needs.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendNotifier struct {
	sender   EmailSender
	from     string
	composer *Composer
	logger   *slog.Logger
}

func NewResendNotifier(apiKey, from string, composer *Composer, logger *slog.Logger) *ResendNotifier {
	return NewResendNotifierWithSender(resend.NewClient(apiKey).Emails, from, composer, logger)
}

func NewResendNotifierWithSender(sender EmailSender, from string, composer *Composer, logger *slog.Logger) *ResendNotifier {
	return &ResendNotifier{
		sender:   sender,
		from:     from,
		composer: composer,
		logger:   logger,
	}
}

func (n *ResendNotifier) Notify(ctx context.Context, intent shared.Intent, r *reminder.Reminder) error {
	msg, err := n.composer.Compose(intent, r)
	if err != nil {
		return err
	}

	sent, err := n.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Tags: []resend.Tag{
			{Name: "intent", Value: string(intent)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send %s email: %w", intent, err)
	}

	n.logger.InfoContext(ctx, "email sent",
		"intent", string(intent),
		"reminder_id", r.ID(),
		"message_id", sent.Id)
	return nil
}
