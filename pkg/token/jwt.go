package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexadamm/s2p-go/internal/jsonutil"
	"github.com/alexadamm/s2p-go/pkg/token/algorithms"
)

// JWT is an unsigned compact token: the encoded header and claims, ready to
// be signed.
type JWT struct {
	header       Header
	claims       Claims
	signingInput string
}

// Decoded holds the parts of a compact token taken apart by Decode
type Decoded struct {
	Header       Header
	Claims       Claims
	SigningInput string
	Signature    []byte
}

// New encodes header and claims into a signing input.
// The header must carry a key ID and an algorithm.
func New(header Header, claims Claims) (*JWT, error) {
	if header.KeyID == "" {
		return nil, ErrMissingKID
	}
	if header.Algorithm == "" {
		return nil, ErrMissingAlgorithm
	}

	headerJSON, err := jsonutil.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrSerialization, err)
	}

	claimsJSON, err := jsonutil.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: claims: %w", ErrSerialization, err)
	}

	return &JWT{
		header:       header,
		claims:       claims,
		signingInput: encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON),
	}, nil
}

// Header returns the token header
func (j *JWT) Header() Header {
	return j.header
}

// Claims returns the token claims
func (j *JWT) Claims() Claims {
	return j.claims
}

// SigningInput returns "<b64url(header)>.<b64url(claims)>"
func (j *JWT) SigningInput() string {
	return j.signingInput
}

// Sign signs the signing input and returns the compact token.
// Errors from the signer are returned unchanged.
func (j *JWT) Sign(signer algorithms.Signer) (string, error) {
	if signer == nil {
		return "", ErrMissingSigner
	}
	if signer.Name() != j.header.Algorithm {
		return "", fmt.Errorf("%w: header alg %q, signer %q", ErrAlgorithmMismatch, j.header.Algorithm, signer.Name())
	}

	signature, err := signer.Sign([]byte(j.signingInput))
	if err != nil {
		return "", err
	}

	return j.signingInput + "." + encodeSegment(signature), nil
}

// Sign builds and signs a token in one step
func Sign(header Header, claims Claims, signer algorithms.Signer) (string, error) {
	jwt, err := New(header, claims)
	if err != nil {
		return "", err
	}
	return jwt.Sign(signer)
}

// Decode splits a compact token and decodes its header and claims.
// It does not verify the signature.
func Decode(compact string) (*Decoded, error) {
	parts := strings.Split(compact, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrInvalidToken, len(parts))
	}

	var decoded Decoded

	if err := decodeSegment(parts[0], &decoded.Header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidToken, err)
	}
	if err := decodeSegment(parts[1], &decoded.Claims); err != nil {
		return nil, fmt.Errorf("%w: claims: %w", ErrInvalidToken, err)
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %w", ErrInvalidToken, err)
	}

	decoded.Signature = signature
	decoded.SigningInput = parts[0] + "." + parts[1]

	return &decoded, nil
}

func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeSegment(seg string, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
