// Package jsonutil holds the JSON encoding shared by token and payload
// serialization.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v as compact JSON without HTML escaping, so "<", ">" and
// "&" stay literal. Struct fields keep declaration order and map keys are
// sorted, which makes the output stable for the same value.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode always terminates the value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
