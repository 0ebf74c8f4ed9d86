package token

import "errors"

// Common errors returned by token operations
var (
	// ErrInvalidToken is returned when a compact token cannot be decoded
	// This includes malformed base64, invalid number of segments, etc.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingKID is returned when the header lacks a "kid"
	ErrMissingKID = errors.New("token is missing key ID (kid)")

	// ErrMissingAlgorithm is returned when the header lacks an "alg"
	ErrMissingAlgorithm = errors.New("token is missing algorithm (alg)")

	// ErrSerialization is returned when the header or claims cannot be encoded as JSON
	ErrSerialization = errors.New("token serialization failed")

	// ErrAlgorithmMismatch is returned when the signer does not implement the header's "alg"
	ErrAlgorithmMismatch = errors.New("signer does not match token algorithm")

	// ErrMissingSigner is returned when Sign is called without a signer
	ErrMissingSigner = errors.New("signer is missing")
)
