package request

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexadamm/s2p-go/internal/jsonutil"
)

// Envelope is a signed registration request
type Envelope struct {
	// JWT is the compact token whose jti binds the request
	JWT string `json:"jwt"`

	// Reg is the registration JSON exactly as it was hashed
	Reg string `json:"reg"`

	// URI is the request URI copied from the descriptor
	URI string `json:"uri"`
}

// JSON returns the envelope as compact JSON in jwt, reg, uri order
func (e *Envelope) JSON() ([]byte, error) {
	b, err := jsonutil.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("%w: envelope: %w", ErrSerialization, err)
	}
	return b, nil
}

// Encode returns the transport form: the unpadded base64url of JSON()
func (e *Envelope) Encode() (string, error) {
	b, err := e.JSON()
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeEnvelope reverses Encode. Padded input is accepted.
func DecodeEnvelope(encoded string) (*Envelope, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	var e Envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	return &e, nil
}
