package token

import (
	"github.com/alexadamm/s2p-go/pkg/token/algorithms"
)

// Header is the JOSE header of a request token.
// Fields are serialized in declaration order and empty optional fields are
// omitted, since the signature covers the raw encoded bytes.
type Header struct {
	// KeyID identifies the registered key that signed the token. Required.
	KeyID string `json:"kid"`

	// Type is the optional media type of the complete token
	Type string `json:"typ,omitempty"`

	// ContentType is the optional media type of the payload
	ContentType string `json:"cty,omitempty"`

	// Algorithm names the signing algorithm and must match the Signer used
	Algorithm string `json:"alg"`

	// PrivateClaims carries extra header parameters
	PrivateClaims map[string]any `json:"privateClaims,omitempty"`
}

// NewHeader returns the header used for registration requests: the key ID
// and RS256, nothing else.
func NewHeader(keyID string) Header {
	return Header{
		KeyID:     keyID,
		Algorithm: algorithms.RS256,
	}
}

// Claims represents the JWT payload.
// Only ID is used by the registration protocol; the rest are kept for
// forward compatibility and omitted when empty.
type Claims struct {
	// Issuer identifies the principal that issued the JWT
	Issuer string `json:"iss,omitempty"`

	// Subject identifies the principal that is the subject of the JWT
	Subject string `json:"sub,omitempty"`

	// Audience identifies the recipients that the JWT is intended for
	Audience string `json:"aud,omitempty"`

	// ExpiresAt identifies the expiration time, in seconds since the epoch
	ExpiresAt int64 `json:"exp,omitempty"`

	// NotBefore identifies the time before which the JWT must not be accepted
	NotBefore int64 `json:"nbf,omitempty"`

	// IssuedAt identifies the time at which the JWT was issued
	IssuedAt int64 `json:"iat,omitempty"`

	// ID carries the canonical request hash
	ID string `json:"jti,omitempty"`

	// Claims holds any additional claims
	Claims map[string]any `json:"claims,omitempty"`
}
