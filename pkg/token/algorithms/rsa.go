package algorithms

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	_ "crypto/sha256"
	"fmt"
)

// RSAAlgorithm signs with RSASSA-PKCS1-v1_5.
// It holds only the key and has no per-call state, so a single instance may
// be shared by concurrent signing calls.
type RSAAlgorithm struct {
	name string
	hash crypto.Hash
	key  *rsa.PrivateKey
}

// NewRS256 creates an RS256 signer.
// Returns ErrInvalidKey unless key is a *rsa.PrivateKey.
func NewRS256(key any) (Signer, error) {
	alg, err := newRSAAlgorithm(RS256, crypto.SHA256, key)
	if err != nil {
		return nil, err
	}
	return alg, nil
}

func newRSAAlgorithm(name string, hash crypto.Hash, key any) (*RSAAlgorithm, error) {
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok || rsaKey == nil {
		return nil, fmt.Errorf("%w: %s requires *rsa.PrivateKey, got %T", ErrInvalidKey, name, key)
	}

	return &RSAAlgorithm{
		name: name,
		hash: hash,
		key:  rsaKey,
	}, nil
}

func (r *RSAAlgorithm) Name() string {
	return r.name
}

// Hash returns the digest used before signing
func (r *RSAAlgorithm) Hash() crypto.Hash {
	return r.hash
}

// Sign hashes message and signs the digest. PKCS#1 v1.5 is deterministic:
// the same key and message always give the same signature.
func (r *RSAAlgorithm) Sign(message []byte) ([]byte, error) {
	h := r.hash.New()
	h.Write(message)
	digest := h.Sum(nil)

	signature, err := rsa.SignPKCS1v15(rand.Reader, r.key, r.hash, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return signature, nil
}

func init() {
	Register(RS256, NewRS256)
}
