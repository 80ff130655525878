package queries

import (
	"context"
	"math"
	"time"

	"egress/internal/domain/reminder"
	"egress/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// ReminderView is the operator-facing projection used by the debug endpoint
// and the CLI listing.
type ReminderView struct {
	ID                      uuid.UUID `json:"id"`
	Service                 string    `json:"service"`
	Email                   string    `json:"email"`
	Status                  string    `json:"status"`
	Deadline                time.Time `json:"deadline"`
	TriggerTime             time.Time `json:"triggerTime"`
	TriggerTimeLocal        string    `json:"triggerTimeLocal"`
	IsReady                 bool      `json:"isReady"`
	TimeUntilTriggerMinutes int64     `json:"timeUntilTriggerMinutes"`
	Created                 time.Time `json:"created"`
}

type ReminderQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*ReminderView, error)
}

type ReminderReadStore interface {
	ListRecent(ctx context.Context, limit int) ([]*reminder.Reminder, error)
}

type reminderQueriesImpl struct {
	readStore ReminderReadStore
	clock     clock.Clock
}

func NewReminderQueries(readStore ReminderReadStore, clk clock.Clock) ReminderQueries {
	return &reminderQueriesImpl{readStore: readStore, clock: clk}
}

func (q *reminderQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*ReminderView, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	rows, err := q.readStore.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	views := make([]*ReminderView, 0, len(rows))
	for _, r := range rows {
		views = append(views, toReminderView(r, now))
	}
	return views, nil
}

func toReminderView(r *reminder.Reminder, now time.Time) *ReminderView {
	until := r.EgressTriggerUTC().Sub(now)
	return &ReminderView{
		ID:                      r.ID(),
		Service:                 r.ServiceName().String(),
		Email:                   r.UserEmail().String(),
		Status:                  r.Status().String(),
		Deadline:                r.TrialEndUTC(),
		TriggerTime:             r.EgressTriggerUTC(),
		TriggerTimeLocal:        r.LocalizedTrigger(),
		IsReady:                 !r.EgressTriggerUTC().After(now),
		TimeUntilTriggerMinutes: int64(math.Round(until.Minutes())),
		Created:                 r.CreatedAt(),
	}
}
