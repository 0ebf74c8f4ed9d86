/*
Package request builds signed registration requests.

A request is an envelope of three strings:

	{"jwt": "<header>.<claims>.<signature>", "reg": "<registration JSON>", "uri": "<request URI>"}

The token's "jti" claim is the canonical hash of the request: SHA-256 over
the method, content type, URI and registration JSON joined with "\n", in
that order, encoded as unpadded base64url. The receiving service recomputes
it, so the order and the delimiter must not change.

Basic usage:

	key, err := keys.LoadPrivateKeyFile("merchant.pem", passphrase)
	if err != nil {
	    return err
	}

	env, err := request.Build(request.SaveToGiftCard, reg, "1D2BE69FF72F4C25AC89B894689C2F1E", key)
	if err != nil {
	    return err
	}

	body, err := env.Encode()

Inputs are checked before any key is loaded or anything is signed. A
missing input is reported as a *MissingFieldError naming the field, and
errors.Is(err, ErrMissingField) holds for all of them.

Keys held elsewhere, such as in Vault, can be used through BuildWithSigner.
*/
package request
