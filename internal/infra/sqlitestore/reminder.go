// Package sqlitestore is the embedded reminder store for single-node
// deployments. Instants are persisted as unix milliseconds.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"egress/internal/domain/reminder"
	"egress/internal/infra"
	"egress/internal/pkg/clock"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const columns = `id, user_email, service_name, trial_end_utc, egress_trigger_utc, timezone_offset, magic_hash, status, created_at, updated_at`

type ReminderStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewReminderStore(db *sql.DB, clk clock.Clock) *ReminderStore {
	return &ReminderStore{db: db, clock: clk}
}

func (s *ReminderStore) Create(ctx context.Context, rem *reminder.Reminder) (*reminder.Reminder, error) {
	q := `INSERT INTO reminders (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?)
		RETURNING ` + columns

	created := toMillis(rem.CreatedAt())
	row := s.db.QueryRowContext(ctx, q,
		rem.ID().String(),
		rem.UserEmail().String(),
		rem.ServiceName().String(),
		toMillis(rem.TrialEndUTC()),
		toMillis(rem.EgressTriggerUTC()),
		rem.TimezoneOffset().Minutes(),
		rem.MagicHash(),
		created,
		created,
	)
	out, err := scanReminder(row)
	if err != nil {
		return nil, wrapErr("failed to create reminder", err)
	}
	return out, nil
}

func (s *ReminderStore) FindDuePending(ctx context.Context, now time.Time) ([]*reminder.Reminder, error) {
	q := `SELECT ` + columns + `
		FROM reminders
		WHERE status = 'pending' AND egress_trigger_utc <= ?
		ORDER BY egress_trigger_utc ASC`
	return s.queryList(ctx, "failed to find due reminders", q, toMillis(now))
}

// TryLock relies on the status guard in the UPDATE itself, so two callers
// racing on the same row cannot both see it returned.
func (s *ReminderStore) TryLock(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	q := `UPDATE reminders
		SET status = 'processing', updated_at = ?
		WHERE id = ? AND status = 'pending'
		RETURNING ` + columns

	out, err := scanReminder(s.db.QueryRowContext(ctx, q, toMillis(s.clock.Now()), id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("failed to lock reminder", err)
	}
	return out, nil
}

func (s *ReminderStore) SetStatus(ctx context.Context, id uuid.UUID, status reminder.Status) (*reminder.Reminder, error) {
	q := `UPDATE reminders
		SET status = ?, updated_at = ?
		WHERE id = ?
		RETURNING ` + columns

	out, err := scanReminder(s.db.QueryRowContext(ctx, q, status.String(), toMillis(s.clock.Now()), id.String()))
	if err != nil {
		return nil, wrapErr("failed to update reminder status", err)
	}
	return out, nil
}

func (s *ReminderStore) FindByToken(ctx context.Context, magicHash string) (*reminder.Reminder, error) {
	q := `SELECT ` + columns + ` FROM reminders WHERE magic_hash = ?`

	out, err := scanReminder(s.db.QueryRowContext(ctx, q, magicHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("failed to find reminder by magic hash", err)
	}
	return out, nil
}

func (s *ReminderStore) Cancel(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	return s.SetStatus(ctx, id, reminder.StatusCancelled)
}

func (s *ReminderStore) ListRecent(ctx context.Context, limit int) ([]*reminder.Reminder, error) {
	q := `SELECT ` + columns + ` FROM reminders ORDER BY created_at DESC LIMIT ?`
	return s.queryList(ctx, "failed to list reminders", q, limit)
}

func (s *ReminderStore) queryList(ctx context.Context, msg, q string, args ...any) ([]*reminder.Reminder, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapErr(msg, err)
	}
	defer rows.Close()

	var out []*reminder.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, wrapErr(msg, err)
		}
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(msg, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReminder(row scanner) (*reminder.Reminder, error) {
	var (
		id, email, service, hash, status string
		trialEnd, trigger                int64
		offset                           int
		created, updated                 int64
	)
	if err := row.Scan(&id, &email, &service, &trialEnd, &trigger, &offset, &hash, &status, &created, &updated); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	st, err := reminder.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return reminder.ReconstructReminder(
		parsedID,
		reminder.RestoreEmail(email),
		reminder.RestoreServiceName(service),
		fromMillis(trialEnd),
		fromMillis(trigger),
		reminder.RestoreTimezoneOffset(offset),
		hash,
		st,
		fromMillis(created),
		fromMillis(updated),
	), nil
}

func wrapErr(msg string, err error) error {
	if isUniqueViolation(err) {
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
