package request

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// CanonicalHash returns the unpadded base64url SHA-256 of
// method + "\n" + contentType + "\n" + uri + "\n" + body.
// The result is always 43 characters long.
func CanonicalHash(method, contentType, uri, body string) string {
	canonical := strings.Join([]string{method, contentType, uri, body}, "\n")
	sum := sha256.Sum256([]byte(canonical))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
