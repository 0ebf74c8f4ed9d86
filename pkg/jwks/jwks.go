package jwks

import (
	"crypto"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// ErrInvalidKey is returned for nil or unusable keys
var ErrInvalidKey = errors.New("invalid public key")

// PublicJWK returns the public JWK for a signing key.
// An empty kid is replaced by the key's thumbprint.
func PublicJWK(kid string, key *rsa.PrivateKey) (jwk.Key, error) {
	if key == nil {
		return nil, ErrInvalidKey
	}
	return FromPublicKey(kid, &key.PublicKey)
}

// FromPublicKey returns the JWK for an RSA public key, marked for RS256
// signatures
func FromPublicKey(kid string, pub *rsa.PublicKey) (jwk.Key, error) {
	if pub == nil || pub.N == nil {
		return nil, ErrInvalidKey
	}

	key, err := jwk.Import(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	if kid == "" {
		kid, err = thumbprint(key)
		if err != nil {
			return nil, err
		}
	}

	if err := key.Set(jwk.KeyIDKey, kid); err != nil {
		return nil, fmt.Errorf("failed to set kid: %w", err)
	}
	if err := key.Set(jwk.AlgorithmKey, jwa.RS256()); err != nil {
		return nil, fmt.Errorf("failed to set alg: %w", err)
	}
	if err := key.Set(jwk.KeyUsageKey, jwk.ForSignature); err != nil {
		return nil, fmt.Errorf("failed to set use: %w", err)
	}

	return key, nil
}

// Set collects keys into a JWK set
func Set(keys ...jwk.Key) (jwk.Set, error) {
	set := jwk.NewSet()
	for _, key := range keys {
		if err := set.AddKey(key); err != nil {
			return nil, fmt.Errorf("failed to add key to set: %w", err)
		}
	}
	return set, nil
}

// Marshal returns the JSON document for a set, {"keys":[...]}
func Marshal(set jwk.Set) ([]byte, error) {
	return json.MarshalIndent(set, "", "  ")
}

// Thumbprint returns the RFC 7638 SHA-256 thumbprint of pub, base64url
// encoded without padding
func Thumbprint(pub *rsa.PublicKey) (string, error) {
	if pub == nil || pub.N == nil {
		return "", ErrInvalidKey
	}

	key, err := jwk.Import(pub)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return thumbprint(key)
}

func thumbprint(key jwk.Key) (string, error) {
	sum, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("failed to compute thumbprint: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(sum), nil
}
