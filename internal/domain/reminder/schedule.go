package reminder

import (
	"fmt"
	"strings"
	"time"
)

// Local wall-clock times are carried as time.Time values in time.UTC whose
// fields hold the user's wall clock. Only LocalToUTC and UTCToLocal cross
// between that representation and real instants.

const (
	// AlertLead is how long before the trial end the alert fires.
	AlertLead = 48 * time.Hour
	// MinimumLead keeps a new trigger from landing in the past.
	MinimumLead = 5 * time.Minute
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseLocalDate parses a calendar date (optionally with a wall-clock time) as
// entered by the user. RFC 3339 input carries its own zone, so it is resolved
// to an instant first and then projected onto the user's wall clock.
func ParseLocalDate(raw string, offsetMinutes int) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, NewFieldError(FieldDate, "Date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return UTCToLocal(t, offsetMinutes), nil
	}
	return time.Time{}, NewFieldError(FieldDate, "Invalid date format")
}

// NormalizeToSafeTime pins the time of day to 00:00:01 when safeMode is set,
// keeping the calendar date.
func NormalizeToSafeTime(date time.Time, safeMode bool) time.Time {
	if !safeMode {
		return date
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 1, 0, date.Location())
}

// LocalToUTC interprets the wall clock of localDate as being offsetMinutes
// ahead of UTC and returns the matching instant.
func LocalToUTC(localDate time.Time, offsetMinutes int) time.Time {
	y, mo, d := localDate.Date()
	h, mi, s := localDate.Clock()
	wall := time.Date(y, mo, d, h, mi, s, localDate.Nanosecond(), time.UTC)
	return wall.Add(-time.Duration(offsetMinutes) * time.Minute)
}

// UTCToLocal is the inverse of LocalToUTC. The result is for display only.
func UTCToLocal(utcInstant time.Time, offsetMinutes int) time.Time {
	return utcInstant.UTC().Add(time.Duration(offsetMinutes) * time.Minute)
}

// CalculateEgressTrigger returns max(now + 5m, trialEnd - 48h). The user's
// offset does not take part in UTC arithmetic, so it is not a parameter.
func CalculateEgressTrigger(now, trialEndUTC time.Time) time.Time {
	floor := now.UTC().Add(MinimumLead)
	ideal := trialEndUTC.UTC().Add(-AlertLead)
	if ideal.After(floor) {
		return ideal
	}
	return floor
}

type TimeRemaining struct {
	Days       int `json:"days"`
	Hours      int `json:"hours"`
	Minutes    int `json:"minutes"`
	TotalHours int `json:"totalHours"`
}

// CalculateTimeRemaining decomposes target-now. Targets at or before now yield
// all zeros.
func CalculateTimeRemaining(now, target time.Time) TimeRemaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return TimeRemaining{}
	}

	const day = 24 * time.Hour
	return TimeRemaining{
		Days:       int(diff / day),
		Hours:      int((diff % day) / time.Hour),
		Minutes:    int((diff % time.Hour) / time.Minute),
		TotalHours: int(diff / time.Hour),
	}
}

const displayLayout = "Jan 2, 2006, 03:04 PM MST"

// FormatDateForTimezone renders utcInstant on the user's wall clock with a
// zone label such as "GMT-5" or "GMT+5:30".
func FormatDateForTimezone(utcInstant time.Time, offsetMinutes int) string {
	zone := time.FixedZone(zoneLabel(offsetMinutes), offsetMinutes*60)
	return utcInstant.In(zone).Format(displayLayout)
}

func zoneLabel(offsetMinutes int) string {
	if offsetMinutes == 0 {
		return "UTC"
	}
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}
	hours, minutes := offsetMinutes/60, offsetMinutes%60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}
