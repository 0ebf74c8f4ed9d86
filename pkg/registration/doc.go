/*
Package registration defines what the request builder needs from a
registration object: its canonical JSON text.

The text returned by CanonicalJSON is used twice, as the body covered by the
request hash and as the "reg" field of the envelope, so it must be the same
string both times. MarshalCanonical gives typed payloads a stable encoding;
RawJSON lets callers pass JSON they already have.

Payload constructors in sibling packages report invalid input as a
*ValidationError, which matches ErrInvalid:

	if errors.Is(err, registration.ErrInvalid) {
	    // bad input, not an internal failure
	}
*/
package registration
