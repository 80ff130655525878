package reminder

import (
	"fmt"

	"egress/internal/pkg/errs"
)

const (
	FieldServiceName    = "serviceName"
	FieldDate           = "date"
	FieldEmail          = "email"
	FieldTimezoneOffset = "timezoneOffset"
)

var (
	ErrInvalidField  = errs.New("invalid field")
	ErrInvalidStatus = errs.New("invalid reminder status")
)

// FieldError names the request field that failed validation so the boundary
// can return a field-level message.
type FieldError struct {
	Field   string
	Message string
	cause   error
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message, cause: ErrInvalidField}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.cause
}
