package registration

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexadamm/s2p-go/internal/jsonutil"
)

// Payload is a registration object that can be sent in a request
type Payload interface {
	// CanonicalJSON returns the exact JSON text that is hashed and embedded
	// in the envelope. It must return the same string on every call.
	CanonicalJSON() (string, error)
}

// MarshalCanonical encodes v as compact JSON with fields in declaration
// order and no HTML escaping
func MarshalCanonical(v any) (string, error) {
	b, err := jsonutil.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return string(b), nil
}

// RawJSON is a payload given as JSON text. Insignificant whitespace is
// removed; key order and values are kept as written.
type RawJSON []byte

// CanonicalJSON implements Payload
func (r RawJSON) CanonicalJSON() (string, error) {
	if len(bytes.TrimSpace(r)) == 0 {
		return "", Invalid("registration JSON is empty")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, r); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return buf.String(), nil
}
