package keys

import "errors"

// Errors returned while loading signing keys
var (
	// ErrKeyFormat is returned when the input holds no parseable PEM private key
	ErrKeyFormat = errors.New("invalid private key format")

	// ErrKeyDecryption is returned when an encrypted key cannot be decrypted.
	// This covers a wrong passphrase, corrupt ciphertext and an encrypted
	// block supplied without any passphrase.
	ErrKeyDecryption = errors.New("private key decryption failed")

	// ErrUnsupportedKeyType is returned when the decoded key is not RSA
	ErrUnsupportedKeyType = errors.New("unsupported private key type")

	// ErrKeyTooSmall is returned when the modulus is below the loader's minimum
	ErrKeyTooSmall = errors.New("private key too small")
)
