/*
Package algorithms implements the JWS signing algorithms used for request tokens.

The package provides a registry of signer factories keyed by JWS algorithm
name. Each factory binds a key to a Signer and rejects keys of the wrong
type when the signer is constructed, not when it signs.

Supported Algorithms:
  - RS256 (RSASSA-PKCS1-v1_5 + SHA-256)

Other signing backends (for example a key held in Vault) implement the same
Signer interface and can be registered under their algorithm name or passed
to callers directly.
*/
package algorithms
