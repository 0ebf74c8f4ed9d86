package algorithms

import (
	"errors"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidKey           = errors.New("invalid key type")
	ErrSigning              = errors.New("signing failed")
)

// RS256 is RSASSA-PKCS1-v1_5 with SHA-256, the only algorithm the
// registration service accepts.
const RS256 = "RS256"

// Signer produces JWS signatures with a single algorithm and key.
// Implementations are selected by the name placed in the JWT "alg" header,
// so callers never need to know the concrete type.
type Signer interface {
	// Name returns the JWS algorithm name (e.g., "RS256")
	Name() string

	// Sign returns the signature over the exact bytes of message
	Sign(message []byte) ([]byte, error)
}

// Factory binds a key to a new Signer.
// It must reject keys of the wrong type with ErrInvalidKey.
type Factory func(key any) (Signer, error)
