/*
Package token builds and signs compact JWS tokens.

A token is the base64url encoding (no padding) of the JSON header and the
JSON claims, joined by a dot and followed by the encoded signature:

	header := token.NewHeader("1D2BE69FF72F4C25AC89B894689C2F1E")
	claims := token.Claims{ID: requestHash}

	jwt, err := token.New(header, claims)
	if err != nil {
	    log.Fatal(err)
	}

	signer, err := algorithms.NewRS256(privateKey)
	if err != nil {
	    log.Fatal(err)
	}

	compact, err := jwt.Sign(signer)

Header and claims are serialized with fields in a fixed order, empty
optional fields omitted and no HTML escaping, so the same inputs always
produce the same signing input. With a deterministic algorithm such as
RS256 the whole token is then reproducible.

Decode takes a compact token apart without verifying it. Verification is
left to the receiving side.
*/
package token
