package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/youmark/pkcs8"

	"github.com/alexadamm/s2p-go/pkg/logs"
)

// PEM block types understood by the loader
const (
	blockPKCS8          = "PRIVATE KEY"
	blockPKCS1          = "RSA PRIVATE KEY"
	blockEncryptedPKCS8 = "ENCRYPTED PRIVATE KEY"
	blockEC             = "EC PRIVATE KEY"
)

// PrivateKey is the key material used for a signing call.
// It must never be logged or persisted.
type PrivateKey struct {
	// Key is the parsed RSA private key
	Key *rsa.PrivateKey

	// Bits is the modulus size in bits
	Bits int
}

// Loader parses PEM encoded RSA private keys.
// A Loader holds no key material and is safe for concurrent use.
type Loader struct {
	logger  logr.Logger
	minBits int
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the logger used for diagnostic messages.
// Only the modulus size and encryption format are ever logged.
func WithLogger(logger logr.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMinimumBits rejects keys whose modulus is smaller than bits
func WithMinimumBits(bits int) Option {
	return func(l *Loader) {
		l.minBits = bits
	}
}

// NewLoader creates a Loader. It is meant to be built once at process
// startup and handed to whatever needs to read keys.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLoader = NewLoader()

// LoadPrivateKey reads a PEM encoded RSA private key using the default loader.
// An empty passphrase means the key is expected to be unencrypted.
func LoadPrivateKey(r io.Reader, passphrase string) (*PrivateKey, error) {
	return defaultLoader.Load(r, passphrase)
}

// LoadPrivateKeyFile reads a PEM encoded RSA private key from path using the default loader.
func LoadPrivateKeyFile(path, passphrase string) (*PrivateKey, error) {
	return defaultLoader.LoadFile(path, passphrase)
}

// LoadFile reads and parses a PEM key file
func (l *Loader) LoadFile(path, passphrase string) (*PrivateKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer f.Close()

	return l.Load(f, passphrase)
}

// Load reads all of r and parses the first PEM block as a private key
func (l *Loader) Load(r io.Reader, passphrase string) (*PrivateKey, error) {
	pemBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read key material: %w", err)
	}

	return l.Parse(pemBytes, passphrase)
}

// Parse decodes PEM bytes into an RSA private key.
//
// Supported inputs:
//   - PRIVATE KEY (PKCS#8) and RSA PRIVATE KEY (PKCS#1), unencrypted
//   - ENCRYPTED PRIVATE KEY (PKCS#8 with PBES2), requires passphrase
//   - RSA PRIVATE KEY with Proc-Type 4,ENCRYPTED (OpenSSL legacy), requires passphrase
//
// A passphrase given for an unencrypted block is ignored.
func (l *Loader) Parse(pemBytes []byte, passphrase string) (*PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: failed to decode PEM block", ErrKeyFormat)
	}

	var (
		key       any
		err       error
		encrypted bool
	)

	switch block.Type {
	case blockEncryptedPKCS8:
		encrypted = true
		if passphrase == "" {
			return nil, fmt.Errorf("%w: PEM block is encrypted but no passphrase was given", ErrKeyDecryption)
		}
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeyDecryption, err)
		}

	case blockPKCS8, blockPKCS1, blockEC:
		der := block.Bytes
		//nolint:staticcheck // legacy OpenSSL encryption is still what many key files use
		if x509.IsEncryptedPEMBlock(block) {
			encrypted = true
			if passphrase == "" {
				return nil, fmt.Errorf("%w: PEM block is encrypted but no passphrase was given", ErrKeyDecryption)
			}
			//nolint:staticcheck
			der, err = x509.DecryptPEMBlock(block, []byte(passphrase))
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrKeyDecryption, err)
			}
		}

		key, err = parseDER(block.Type, der)
		if err != nil {
			// A wrong passphrase can survive the padding check and only
			// show up as garbage DER.
			if encrypted {
				return nil, fmt.Errorf("%w: %w", ErrKeyDecryption, err)
			}
			return nil, fmt.Errorf("%w: %w", ErrKeyFormat, err)
		}

	default:
		return nil, fmt.Errorf("%w: unsupported PEM block type: %s (expected %s, %s or %s)",
			ErrKeyFormat, block.Type, blockPKCS8, blockPKCS1, blockEncryptedPKCS8)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: key is not an RSA private key, got %T", ErrUnsupportedKeyType, key)
	}

	bits := rsaKey.N.BitLen()
	if l.minBits > 0 && bits < l.minBits {
		return nil, fmt.Errorf("%w: RSA key size must be at least %d bits, got %d bits", ErrKeyTooSmall, l.minBits, bits)
	}

	l.logger.V(logs.Debug).Info("loaded private key", "bits", bits, "encrypted", encrypted, "pemType", block.Type)

	return &PrivateKey{
		Key:  rsaKey,
		Bits: bits,
	}, nil
}

// parseDER parses the DER bytes of a private key block. Mislabelled blocks
// are common enough that PKCS#1 and PKCS#8 are each tried as a fallback for
// the other.
func parseDER(blockType string, der []byte) (any, error) {
	switch blockType {
	case blockPKCS1:
		key, err := x509.ParsePKCS1PrivateKey(der)
		if err == nil {
			return key, nil
		}
		if key, err8 := x509.ParsePKCS8PrivateKey(der); err8 == nil {
			return key, nil
		}
		return nil, fmt.Errorf("failed to parse PKCS1 private key: %w", err)

	case blockEC:
		key, err := x509.ParseECPrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("failed to parse EC private key: %w", err)
		}
		return key, nil

	default:
		key, err := x509.ParsePKCS8PrivateKey(der)
		if err == nil {
			return key, nil
		}
		if key, err1 := x509.ParsePKCS1PrivateKey(der); err1 == nil {
			return key, nil
		}
		return nil, fmt.Errorf("failed to parse PKCS8 private key: %w", err)
	}
}
