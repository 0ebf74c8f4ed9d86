package algorithms

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	// Test registering a mock algorithm
	Register("MOCK256", func(key any) (Signer, error) {
		return &mockSigner{name: "MOCK256"}, nil
	})

	// Test retrieving algorithm
	t.Run("New for registered algorithm", func(t *testing.T) {
		signer, err := New("MOCK256", nil)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		if signer.Name() != "MOCK256" {
			t.Errorf("Expected MOCK256, got %s", signer.Name())
		}
	})

	t.Run("New for unknown algorithm", func(t *testing.T) {
		_, err := New("NONEXISTENT", nil)
		if err == nil {
			t.Error("Expected error for non-existent algorithm")
		}
		if !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("Expected error containing %v, got %v", ErrUnsupportedAlgorithm, err)
		}
	})

	t.Run("List registered algorithms", func(t *testing.T) {
		found := map[string]bool{}
		for _, name := range List() {
			found[name] = true
		}
		if !found["MOCK256"] || !found[RS256] {
			t.Errorf("Expected MOCK256 and RS256 in algorithm list, got %v", List())
		}
	})
}

func TestRegistryRS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	signer, err := New(RS256, key)
	if err != nil {
		t.Fatalf("Failed to get RS256 signer: %v", err)
	}
	if signer.Name() != RS256 {
		t.Errorf("Expected %s, got %s", RS256, signer.Name())
	}

	// Wrong key types are rejected when the signer is built
	if _, err := New(RS256, &key.PublicKey); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got %v", err)
	}
}

// Mock signer for testing
type mockSigner struct {
	name string
}

func (m *mockSigner) Name() string {
	return m.name
}

func (m *mockSigner) Sign(message []byte) ([]byte, error) {
	return []byte("mock-signature"), nil
}
