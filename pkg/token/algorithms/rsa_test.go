package algorithms

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"sync"
	"testing"
)

func TestRS256Sign(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	signer, err := NewRS256(privateKey)
	if err != nil {
		t.Fatalf("NewRS256 failed: %v", err)
	}

	message := []byte("eyJraWQiOiJrIiwiYWxnIjoiUlMyNTYifQ.eyJqdGkiOiJ4In0")

	t.Run("Name", func(t *testing.T) {
		if signer.Name() != "RS256" {
			t.Errorf("Expected RS256, got %s", signer.Name())
		}
		if h := signer.(*RSAAlgorithm).Hash(); h != crypto.SHA256 {
			t.Errorf("Expected SHA256, got %v", h)
		}
	})

	t.Run("Signature verifies", func(t *testing.T) {
		signature, err := signer.Sign(message)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
		if len(signature) != 256 {
			t.Errorf("Expected 256-byte signature for 2048-bit key, got %d", len(signature))
		}

		digest := sha256.Sum256(message)
		if err := rsa.VerifyPKCS1v15(&privateKey.PublicKey, crypto.SHA256, digest[:], signature); err != nil {
			t.Errorf("Signature verification failed: %v", err)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := signer.Sign(message)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
		second, err := signer.Sign(message)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Error("Expected identical signatures for identical input")
		}

		other, err := signer.Sign(append(append([]byte{}, message...), '.'))
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
		if bytes.Equal(first, other) {
			t.Error("Expected different signatures for different input")
		}
	})

	t.Run("Concurrent use", func(t *testing.T) {
		want, err := signer.Sign(message)
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := signer.Sign(message)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(got, want) {
					errs <- errors.New("signature mismatch")
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Error(err)
		}
	})
}

func TestRS256InvalidKey(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate ECDSA key: %v", err)
	}
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate RSA key: %v", err)
	}

	tests := []struct {
		name string
		key  any
	}{
		{"nil", nil},
		{"typed nil", (*rsa.PrivateKey)(nil)},
		{"ECDSA private key", ecKey},
		{"RSA public key", &rsaKey.PublicKey},
		{"not a key", "not a key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := NewRS256(tt.key)
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Expected ErrInvalidKey, got %v", err)
			}
			if signer != nil {
				t.Error("Expected nil signer")
			}
		})
	}
}
