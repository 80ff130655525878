package reminder

import (
	"regexp"
	"strings"
)

const (
	MinTimezoneOffset = -720
	MaxTimezoneOffset = 840

	MaxServiceNameLength = 200
	MaxEmailLength       = 320
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address before checking its shape.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, NewFieldError(FieldEmail, "Email is required")
	}
	if len(normalized) > MaxEmailLength || !emailShape.MatchString(normalized) {
		return Email{}, NewFieldError(FieldEmail, "Invalid email address")
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

type ServiceName struct {
	value string
}

func NewServiceName(raw string) (ServiceName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ServiceName{}, NewFieldError(FieldServiceName, "Service name is required")
	}
	if len([]rune(trimmed)) > MaxServiceNameLength {
		return ServiceName{}, NewFieldError(FieldServiceName, "Service name is too long")
	}
	return ServiceName{value: trimmed}, nil
}

func (n ServiceName) String() string {
	return n.value
}

// TimezoneOffset is minutes ahead of UTC (e.g. -300 for EST, 330 for IST).
type TimezoneOffset struct {
	minutes int
}

func NewTimezoneOffset(minutes int) (TimezoneOffset, error) {
	if minutes < MinTimezoneOffset || minutes > MaxTimezoneOffset {
		return TimezoneOffset{}, NewFieldError(FieldTimezoneOffset, "Timezone offset must be between -720 and 840 minutes")
	}
	return TimezoneOffset{minutes: minutes}, nil
}

func (o TimezoneOffset) Minutes() int {
	return o.minutes
}
