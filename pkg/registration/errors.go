package registration

import "errors"

var (
	// ErrInvalid is matched by every ValidationError
	ErrInvalid = errors.New("invalid registration")

	// ErrEncoding is returned when a payload cannot be encoded as JSON
	ErrEncoding = errors.New("registration encoding failed")
)

// ValidationError reports a missing or malformed registration field
type ValidationError struct {
	Message string
}

// Invalid returns a ValidationError with the given message
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalid) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
