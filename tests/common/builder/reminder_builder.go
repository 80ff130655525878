//go:build unit || e2e

package builder

import (
	"strings"
	"time"

	"egress/internal/domain/reminder"
	reqdto "egress/internal/handler/dto/request"
	sqlc "egress/internal/infra/sqlc/generated"
	"egress/internal/pkg/clock"
	"egress/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultNow sits well over 48 hours before the default deadline.
var DefaultNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type ReminderBuilder struct {
	Email          string
	ServiceName    string
	Date           string
	TimezoneOffset int
	SafeMode       bool
	MagicHash      string
	Status         reminder.Status
	Now            time.Time
}

func NewReminderBuilder() *ReminderBuilder {
	return &ReminderBuilder{
		Email:          "user@example.com",
		ServiceName:    "Netflix",
		Date:           "2025-01-10",
		TimezoneOffset: 0,
		SafeMode:       true,
		MagicHash:      strings.Repeat("ab", 32),
		Status:         reminder.StatusPending,
		Now:            DefaultNow,
	}
}

func (b *ReminderBuilder) With(mutate func(*ReminderBuilder)) *ReminderBuilder {
	mutate(b)
	return b
}

func (b *ReminderBuilder) WithStatus(s reminder.Status) *ReminderBuilder {
	b.Status = s
	return b
}

func (b *ReminderBuilder) WithMagicHash(h string) *ReminderBuilder {
	b.MagicHash = h
	return b
}

func (b *ReminderBuilder) Services() *reminder.Services {
	return &reminder.Services{Clock: clock.NewMockClock(b.Now)}
}

func (b *ReminderBuilder) ArmInput() (reminder.ArmInput, error) {
	email, err := reminder.NewEmail(b.Email)
	if err != nil {
		return reminder.ArmInput{}, err
	}
	name, err := reminder.NewServiceName(b.ServiceName)
	if err != nil {
		return reminder.ArmInput{}, err
	}
	offset, err := reminder.NewTimezoneOffset(b.TimezoneOffset)
	if err != nil {
		return reminder.ArmInput{}, err
	}
	local, err := reminder.ParseLocalDate(b.Date, b.TimezoneOffset)
	if err != nil {
		return reminder.ArmInput{}, err
	}
	return reminder.ArmInput{
		Email:         email,
		ServiceName:   name,
		LocalDeadline: local,
		Offset:        offset,
		SafeMode:      b.SafeMode,
	}, nil
}

// Build methods
func (b *ReminderBuilder) BuildDomain() (*reminder.Reminder, error) {
	in, err := b.ArmInput()
	if err != nil {
		return nil, err
	}
	return reminder.NewReminder(b.Services(), in, b.MagicHash)
}

// BuildPersisted returns the reminder as a store would hand it back, with
// Status applied. It panics on invalid builder state.
func (b *ReminderBuilder) BuildPersisted() *reminder.Reminder {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return reminder.ReconstructReminder(
		r.ID(),
		r.UserEmail(),
		r.ServiceName(),
		r.TrialEndUTC(),
		r.EgressTriggerUTC(),
		r.TimezoneOffset(),
		r.MagicHash(),
		b.Status,
		r.CreatedAt(),
		r.UpdatedAt(),
	)
}

func (b *ReminderBuilder) BuildInfra() sqlc.Reminders {
	r := b.BuildPersisted()
	return sqlc.Reminders{
		ID:               r.ID(),
		UserEmail:        r.UserEmail().String(),
		ServiceName:      r.ServiceName().String(),
		TrialEndUtc:      pgconv.TimeToPgtype(r.TrialEndUTC()),
		EgressTriggerUtc: pgconv.TimeToPgtype(r.EgressTriggerUTC()),
		TimezoneOffset:   int32(r.TimezoneOffset().Minutes()),
		MagicHash:        r.MagicHash(),
		Status:           r.Status().String(),
		CreatedAt:        pgtype.Timestamptz{Time: r.CreatedAt(), Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: r.UpdatedAt(), Valid: true},
	}
}

func (b *ReminderBuilder) BuildCreateRequestDTO() reqdto.CreateReminderRequest {
	offset := b.TimezoneOffset
	safeMode := b.SafeMode
	return reqdto.CreateReminderRequest{
		ServiceName:    b.ServiceName,
		Date:           b.Date,
		Email:          b.Email,
		TimezoneOffset: &offset,
		SafeMode:       &safeMode,
	}
}
