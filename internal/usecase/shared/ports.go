package shared

import (
	"context"
	"time"

	"egress/internal/domain/reminder"

	"github.com/google/uuid"
)

// ReminderStore is implemented by every persistence backend. Each method is a
// single atomic statement at the store level.
type ReminderStore interface {
	// Create inserts a pending reminder. A magic hash collision is reported as
	// an infra.KindDuplicateKey error.
	Create(ctx context.Context, r *reminder.Reminder) (*reminder.Reminder, error)
	// FindDuePending returns pending reminders with trigger <= now, earliest first.
	FindDuePending(ctx context.Context, now time.Time) ([]*reminder.Reminder, error)
	// TryLock moves a reminder from pending to processing in one conditional
	// write. It returns nil, nil when the reminder was not pending.
	TryLock(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error)
	SetStatus(ctx context.Context, id uuid.UUID, status reminder.Status) (*reminder.Reminder, error)
	// FindByToken returns nil, nil when no reminder carries the token.
	FindByToken(ctx context.Context, magicHash string) (*reminder.Reminder, error)
	Cancel(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error)
	ListRecent(ctx context.Context, limit int) ([]*reminder.Reminder, error)
}

type Intent string

const (
	IntentConfirmation Intent = "confirmation"
	IntentTriggerAlert Intent = "trigger-alert"
)

type Notifier interface {
	Notify(ctx context.Context, intent Intent, r *reminder.Reminder) error
}

// ConfirmationQueue hands confirmations to background workers. Enqueue never
// blocks the caller.
type ConfirmationQueue interface {
	Enqueue(r *reminder.Reminder)
}

type ServiceURLResolver interface {
	Resolve(serviceName string) (string, bool)
}

type TokenGenerator interface {
	Generate() (string, error)
}
