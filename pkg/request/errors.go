package request

import "errors"

var (
	// ErrMissingField is matched by every MissingFieldError
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownDescriptor is returned by DescriptorByName for unknown names
	ErrUnknownDescriptor = errors.New("unknown request descriptor")

	// ErrSerialization is returned when the registration or envelope cannot be encoded
	ErrSerialization = errors.New("request serialization failed")

	// ErrInvalidEnvelope is returned when an encoded envelope cannot be decoded
	ErrInvalidEnvelope = errors.New("invalid envelope")
)

// Field names reported by MissingFieldError
const (
	FieldPrivateKey   = "private key"
	FieldSigner       = "signer"
	FieldKeyID        = "keyID"
	FieldRegistration = "registration object"
	FieldDescriptor   = "request descriptor"
	FieldKeyPEMPath   = "key PEM path"
)

// MissingFieldError reports a required builder input that was not given
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is missing"
}

// Is makes errors.Is(err, ErrMissingField) true for any MissingFieldError
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}
