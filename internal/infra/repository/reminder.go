package repository

import (
	"context"
	"time"

	"egress/internal/domain/reminder"
	"egress/internal/infra"
	sqlc "egress/internal/infra/sqlc/generated"
	"egress/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReminderQueries interface {
	CreateReminder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReminderParams) (sqlc.Reminders, error)
	FindDuePendingReminders(ctx context.Context, db sqlc.DBTX, egressTriggerUtc pgtype.Timestamptz) ([]sqlc.Reminders, error)
	LockReminderForProcessing(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reminders, error)
	UpdateReminderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReminderStatusParams) (sqlc.Reminders, error)
	FindReminderByMagicHash(ctx context.Context, db sqlc.DBTX, magicHash string) (sqlc.Reminders, error)
	ListRecentReminders(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Reminders, error)
}

// ReminderRepository is the PostgreSQL reminder store.
type ReminderRepository struct {
	queries ReminderQueries
	db      sqlc.DBTX
}

func NewReminderRepository(queries ReminderQueries, db sqlc.DBTX) *ReminderRepository {
	return &ReminderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *reminder.Reminder) (*reminder.Reminder, error) {
	row, err := r.queries.CreateReminder(ctx, r.db, sqlc.CreateReminderParams{
		ID:               rem.ID(),
		UserEmail:        rem.UserEmail().String(),
		ServiceName:      rem.ServiceName().String(),
		TrialEndUtc:      pgconv.TimeToPgtype(rem.TrialEndUTC()),
		EgressTriggerUtc: pgconv.TimeToPgtype(rem.EgressTriggerUTC()),
		TimezoneOffset:   int32(rem.TimezoneOffset().Minutes()),
		MagicHash:        rem.MagicHash(),
		CreatedAt:        pgconv.TimeToPgtype(rem.CreatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reminder", err)
	}
	return toDomain(row)
}

func (r *ReminderRepository) FindDuePending(ctx context.Context, now time.Time) ([]*reminder.Reminder, error) {
	rows, err := r.queries.FindDuePendingReminders(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due reminders", err)
	}
	return toDomainList(rows)
}

func (r *ReminderRepository) TryLock(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	row, err := r.queries.LockReminderForProcessing(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock reminder", err)
	}
	return toDomain(row)
}

func (r *ReminderRepository) SetStatus(ctx context.Context, id uuid.UUID, status reminder.Status) (*reminder.Reminder, error) {
	row, err := r.queries.UpdateReminderStatus(ctx, r.db, sqlc.UpdateReminderStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reminder status", err)
	}
	return toDomain(row)
}

func (r *ReminderRepository) FindByToken(ctx context.Context, magicHash string) (*reminder.Reminder, error) {
	row, err := r.queries.FindReminderByMagicHash(ctx, r.db, magicHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find reminder by magic hash", err)
	}
	return toDomain(row)
}

func (r *ReminderRepository) Cancel(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	return r.SetStatus(ctx, id, reminder.StatusCancelled)
}

func (r *ReminderRepository) ListRecent(ctx context.Context, limit int) ([]*reminder.Reminder, error) {
	rows, err := r.queries.ListRecentReminders(ctx, r.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminders", err)
	}
	return toDomainList(rows)
}

func toDomain(row sqlc.Reminders) (*reminder.Reminder, error) {
	status, err := reminder.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected reminder status "+row.Status, err)
	}
	return reminder.ReconstructReminder(
		row.ID,
		reminder.RestoreEmail(row.UserEmail),
		reminder.RestoreServiceName(row.ServiceName),
		pgconv.TimeFromPgtype(row.TrialEndUtc),
		pgconv.TimeFromPgtype(row.EgressTriggerUtc),
		reminder.RestoreTimezoneOffset(int(row.TimezoneOffset)),
		row.MagicHash,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func toDomainList(rows []sqlc.Reminders) ([]*reminder.Reminder, error) {
	out := make([]*reminder.Reminder, 0, len(rows))
	for _, row := range rows {
		rem, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, nil
}
