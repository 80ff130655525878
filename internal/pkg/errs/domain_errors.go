package errs

// Sentinel errors shared between the use case and handler layers
var (
	// Validation errors
	ErrValidation = New("validation failed")

	// Reminder errors
	ErrMagicHashExhausted = New("magic hash retries exhausted")

	// Operation errors
	ErrStoreUnavailable = New("reminder store unavailable")
)
