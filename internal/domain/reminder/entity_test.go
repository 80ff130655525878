//go:build unit

package reminder_test

import (
	"strings"
	"testing"
	"time"

	"egress/internal/domain/reminder"
	"egress/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReminderBuilder)
	field  string
}

func TestReminder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReminderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "user@example.com", actual.UserEmail().String())
		assert.Equal(t, "Netflix", actual.ServiceName().String())
		assert.Equal(t, reminder.StatusPending, actual.Status())
		assert.Equal(t, strings.Repeat("ab", 32), actual.MagicHash())
		assert.Equal(t, builder.DefaultNow, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("safe mode date at utc", func(t *testing.T) {
		actual, err := builder.NewReminderBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC), actual.TrialEndUTC())
		assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 1, 0, time.UTC), actual.EgressTriggerUTC())
	})

	t.Run("one hour trial triggers five minutes out", func(t *testing.T) {
		b := builder.NewReminderBuilder().With(func(b *builder.ReminderBuilder) {
			b.Date = b.Now.Add(time.Hour).Format(time.RFC3339)
			b.SafeMode = false
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.Now.Add(time.Hour), actual.TrialEndUTC())
		assert.Equal(t, b.Now.Add(5*time.Minute), actual.EgressTriggerUTC())
	})

	t.Run("offset shifts the deadline instant", func(t *testing.T) {
		actual, err := builder.NewReminderBuilder().With(func(b *builder.ReminderBuilder) {
			b.TimezoneOffset = -300
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 1, 10, 5, 0, 1, 0, time.UTC), actual.TrialEndUTC())
		assert.Equal(t, -300, actual.TimezoneOffset().Minutes())
		assert.Equal(t, "Jan 10, 2025, 12:00 AM GMT-5", actual.LocalizedDeadline())
	})

	t.Run("input normalization", func(t *testing.T) {
		actual, err := builder.NewReminderBuilder().With(func(b *builder.ReminderBuilder) {
			b.Email = "  User@Example.COM "
			b.ServiceName = "  Spotify  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "user@example.com", actual.UserEmail().String())
		assert.Equal(t, "Spotify", actual.ServiceName().String())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty email",
				mutate: func(b *builder.ReminderBuilder) { b.Email = "  " },
				field:  reminder.FieldEmail,
			},
			{
				name:   "email without domain",
				mutate: func(b *builder.ReminderBuilder) { b.Email = "user@localhost" },
				field:  reminder.FieldEmail,
			},
			{
				name:   "empty service name",
				mutate: func(b *builder.ReminderBuilder) { b.ServiceName = "" },
				field:  reminder.FieldServiceName,
			},
			{
				name:   "service name too long",
				mutate: func(b *builder.ReminderBuilder) { b.ServiceName = strings.Repeat("x", reminder.MaxServiceNameLength+1) },
				field:  reminder.FieldServiceName,
			},
			{
				name:   "offset below range",
				mutate: func(b *builder.ReminderBuilder) { b.TimezoneOffset = reminder.MinTimezoneOffset - 1 },
				field:  reminder.FieldTimezoneOffset,
			},
			{
				name:   "offset above range",
				mutate: func(b *builder.ReminderBuilder) { b.TimezoneOffset = reminder.MaxTimezoneOffset + 1 },
				field:  reminder.FieldTimezoneOffset,
			},
			{
				name:   "unparseable date",
				mutate: func(b *builder.ReminderBuilder) { b.Date = "10/01/2025" },
				field:  reminder.FieldDate,
			},
			{
				name:   "deadline in the past",
				mutate: func(b *builder.ReminderBuilder) { b.Date = "2024-12-31" },
				field:  reminder.FieldDate,
			},
			{
				name: "deadline inside the minimum lead",
				mutate: func(b *builder.ReminderBuilder) {
					b.Date = b.Now.Add(4 * time.Minute).Format(time.RFC3339)
					b.SafeMode = false
				},
				field: reminder.FieldDate,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		r1, err1 := builder.NewReminderBuilder().BuildDomain()
		r2, err2 := builder.NewReminderBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, r1.ID(), r2.ID())
	})

	t.Run("IsDue", func(t *testing.T) {
		r := builder.NewReminderBuilder().BuildPersisted()
		trigger := r.EgressTriggerUTC()

		assert.False(t, r.IsDue(trigger.Add(-time.Second)))
		assert.True(t, r.IsDue(trigger))
		assert.True(t, r.IsDue(trigger.Add(time.Hour)))

		sent := builder.NewReminderBuilder().WithStatus(reminder.StatusSent).BuildPersisted()
		assert.False(t, sent.IsDue(trigger.Add(time.Hour)))
	})

	t.Run("WithMagicHash leaves the original untouched", func(t *testing.T) {
		r := builder.NewReminderBuilder().BuildPersisted()
		fresh := r.WithMagicHash(strings.Repeat("cd", 32))

		assert.Equal(t, strings.Repeat("ab", 32), r.MagicHash())
		assert.Equal(t, strings.Repeat("cd", 32), fresh.MagicHash())
		assert.Equal(t, r.ID(), fresh.ID())
	})
}

func TestStatus(t *testing.T) {
	for _, s := range []reminder.Status{
		reminder.StatusPending, reminder.StatusProcessing, reminder.StatusSent,
		reminder.StatusFailed, reminder.StatusCancelled,
	} {
		parsed, err := reminder.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := reminder.ParseStatus("archived")
	assert.ErrorIs(t, err, reminder.ErrInvalidStatus)

	assert.False(t, reminder.StatusPending.IsTerminal())
	assert.False(t, reminder.StatusProcessing.IsTerminal())
	assert.True(t, reminder.StatusSent.IsTerminal())
	assert.True(t, reminder.StatusFailed.IsTerminal())
	assert.True(t, reminder.StatusCancelled.IsTerminal())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReminderBuilder().With(c.mutate).BuildDomain()

			require.Nil(t, actual)
			require.Error(t, err)
			require.ErrorIs(t, err, reminder.ErrInvalidField)

			var fe *reminder.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, c.field, fe.Field)
		})
	}
}
