package reminder

import (
	"time"

	"egress/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

// ArmInput is the validated creation request. LocalDeadline carries the
// user's wall clock (see ParseLocalDate).
type ArmInput struct {
	Email         Email
	ServiceName   ServiceName
	LocalDeadline time.Time
	Offset        TimezoneOffset
	SafeMode      bool
}

type Reminder struct {
	id               uuid.UUID
	userEmail        Email
	serviceName      ServiceName
	trialEndUTC      time.Time
	egressTriggerUTC time.Time
	timezoneOffset   TimezoneOffset
	magicHash        string
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

// NewReminder computes trial end and trigger instants once. A deadline that
// falls before now+MinimumLead is rejected so the trigger never exceeds it.
func NewReminder(services *Services, in ArmInput, magicHash string) (*Reminder, error) {
	now := services.Clock.Now().UTC()

	local := NormalizeToSafeTime(in.LocalDeadline, in.SafeMode)
	trialEnd := LocalToUTC(local, in.Offset.Minutes())
	if trialEnd.Before(now.Add(MinimumLead)) {
		return nil, NewFieldError(FieldDate, "Trial end date must be in the future")
	}

	return &Reminder{
		id:               uuid.New(),
		userEmail:        in.Email,
		serviceName:      in.ServiceName,
		trialEndUTC:      trialEnd,
		egressTriggerUTC: CalculateEgressTrigger(now, trialEnd),
		timezoneOffset:   in.Offset,
		magicHash:        magicHash,
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// WithMagicHash returns a copy carrying a fresh token, used after a collision.
func (r *Reminder) WithMagicHash(hash string) *Reminder {
	cp := *r
	cp.magicHash = hash
	return &cp
}

func ReconstructReminder(
	id uuid.UUID,
	userEmail Email,
	serviceName ServiceName,
	trialEndUTC, egressTriggerUTC time.Time,
	timezoneOffset TimezoneOffset,
	magicHash string,
	status Status,
	createdAt, updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:               id,
		userEmail:        userEmail,
		serviceName:      serviceName,
		trialEndUTC:      trialEndUTC.UTC(),
		egressTriggerUTC: egressTriggerUTC.UTC(),
		timezoneOffset:   timezoneOffset,
		magicHash:        magicHash,
		status:           status,
		createdAt:        createdAt.UTC(),
		updatedAt:        updatedAt.UTC(),
	}
}

// RestoreEmail and friends skip validation for values already persisted.
func RestoreEmail(v string) Email                { return Email{value: v} }
func RestoreServiceName(v string) ServiceName    { return ServiceName{value: v} }
func RestoreTimezoneOffset(m int) TimezoneOffset { return TimezoneOffset{minutes: m} }

func (r *Reminder) IsCancelled() bool {
	return r.status == StatusCancelled
}

// IsDue reports whether a pending reminder's trigger has been reached.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.status == StatusPending && !r.egressTriggerUTC.After(now)
}

func (r *Reminder) TimeUntilTrigger(now time.Time) TimeRemaining {
	return CalculateTimeRemaining(now, r.egressTriggerUTC)
}

func (r *Reminder) LocalizedDeadline() string {
	return FormatDateForTimezone(r.trialEndUTC, r.timezoneOffset.Minutes())
}

func (r *Reminder) LocalizedTrigger() string {
	return FormatDateForTimezone(r.egressTriggerUTC, r.timezoneOffset.Minutes())
}

func (r *Reminder) ID() uuid.UUID                  { return r.id }
func (r *Reminder) UserEmail() Email               { return r.userEmail }
func (r *Reminder) ServiceName() ServiceName       { return r.serviceName }
func (r *Reminder) TrialEndUTC() time.Time         { return r.trialEndUTC }
func (r *Reminder) EgressTriggerUTC() time.Time    { return r.egressTriggerUTC }
func (r *Reminder) TimezoneOffset() TimezoneOffset { return r.timezoneOffset }
func (r *Reminder) MagicHash() string              { return r.magicHash }
func (r *Reminder) Status() Status                 { return r.status }
func (r *Reminder) CreatedAt() time.Time           { return r.createdAt }
func (r *Reminder) UpdatedAt() time.Time           { return r.updatedAt }
