//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"egress/internal/domain/reminder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToSafeTime(t *testing.T) {
	in := time.Date(2025, 3, 14, 18, 45, 30, 500, time.UTC)

	t.Run("safe mode pins to one second past midnight", func(t *testing.T) {
		got := reminder.NormalizeToSafeTime(in, true)
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 1, 0, time.UTC), got)
	})

	t.Run("unsafe mode keeps the value", func(t *testing.T) {
		assert.Equal(t, in, reminder.NormalizeToSafeTime(in, false))
	})
}

func TestLocalToUTC(t *testing.T) {
	local := time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC)

	cases := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{"utc", 0, time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC)},
		{"new york", -300, time.Date(2025, 1, 10, 5, 0, 1, 0, time.UTC)},
		{"india", 330, time.Date(2025, 1, 9, 18, 30, 1, 0, time.UTC)},
		{"kiribati", 840, time.Date(2025, 1, 9, 10, 0, 1, 0, time.UTC)},
		{"baker island", -720, time.Date(2025, 1, 10, 12, 0, 1, 0, time.UTC)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, reminder.LocalToUTC(local, c.offset))
		})
	}
}

func TestLocalRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 12, 31, 12, 30, 0, 0, time.UTC),
	}
	for _, d := range dates {
		for offset := reminder.MinTimezoneOffset; offset <= reminder.MaxTimezoneOffset; offset += 15 {
			got := reminder.UTCToLocal(reminder.LocalToUTC(d, offset), offset)
			require.True(t, d.Equal(got), "date %s offset %d round-tripped to %s", d, offset, got)
		}
	}
}

func TestCalculateEgressTrigger(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("far deadline fires 48 hours early", func(t *testing.T) {
		trialEnd := time.Date(2025, 1, 10, 0, 0, 1, 0, time.UTC)
		got := reminder.CalculateEgressTrigger(now, trialEnd)
		assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 1, 0, time.UTC), got)
	})

	t.Run("short trial falls back to the five minute floor", func(t *testing.T) {
		trialEnd := now.Add(time.Hour)
		got := reminder.CalculateEgressTrigger(now, trialEnd)
		assert.Equal(t, now.Add(5*time.Minute), got)
	})

	t.Run("bounds hold across horizons", func(t *testing.T) {
		for d := 5 * time.Minute; d <= 30*24*time.Hour; d += 37 * time.Minute {
			trialEnd := now.Add(d)
			got := reminder.CalculateEgressTrigger(now, trialEnd)
			assert.False(t, got.Before(now.Add(5*time.Minute)), "horizon %s", d)
			assert.False(t, got.After(trialEnd), "horizon %s", d)
		}
	})
}

func TestCalculateTimeRemaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
		want   reminder.TimeRemaining
	}{
		{"past", now.Add(-time.Hour), reminder.TimeRemaining{}},
		{"now", now, reminder.TimeRemaining{}},
		{"ninety minutes", now.Add(90 * time.Minute), reminder.TimeRemaining{Days: 0, Hours: 1, Minutes: 30, TotalHours: 1}},
		{"two days and change", now.Add(50*time.Hour + 5*time.Minute), reminder.TimeRemaining{Days: 2, Hours: 2, Minutes: 5, TotalHours: 50}},
		{"seconds truncate", now.Add(59 * time.Second), reminder.TimeRemaining{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, reminder.CalculateTimeRemaining(now, c.target))
		})
	}
}

func TestFormatDateForTimezone(t *testing.T) {
	instant := time.Date(2025, 1, 10, 5, 0, 1, 0, time.UTC)

	cases := []struct {
		name   string
		offset int
		want   string
	}{
		{"utc", 0, "Jan 10, 2025, 05:00 AM UTC"},
		{"eastern", -300, "Jan 10, 2025, 12:00 AM GMT-5"},
		{"india", 330, "Jan 10, 2025, 10:30 AM GMT+5:30"},
		{"nepal", 345, "Jan 10, 2025, 10:45 AM GMT+5:45"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, reminder.FormatDateForTimezone(instant, c.offset))
		})
	}
}

func TestParseLocalDate(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		offset  int
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", raw: "2025-01-10", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "datetime-local", raw: "2025-01-10T18:30", want: time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC)},
		{name: "surrounding whitespace", raw: " 2025-01-10 ", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 projected onto wall clock", raw: "2025-01-10T05:00:00Z", offset: -300, want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "next tuesday", wantErr: true},
		{name: "impossible day", raw: "2025-02-30", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reminder.ParseLocalDate(c.raw, c.offset)
			if c.wantErr {
				require.ErrorIs(t, err, reminder.ErrInvalidField)
				var fe *reminder.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, reminder.FieldDate, fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
