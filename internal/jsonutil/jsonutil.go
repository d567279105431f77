// Package jsonutil provides shared helpers for decoding loosely typed JSON
// payloads: context-wrapped errors, object field access and primitive
// formatting.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// RawArray splits a JSON array into its raw elements without decoding them.
// A JSON null decodes to an empty slice, never nil.
func RawArray(data []byte) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, nil
}

// Fields decodes a JSON object into its raw fields.
// Returns an error if raw is not an object.
func Fields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// IsPrimitive reports whether raw holds a non-null string, number or bool.
func IsPrimitive(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case '{', '[':
		return false
	case 'n':
		return false // null
	}
	return json.Valid(raw)
}

// PrimitiveString converts a raw JSON primitive to its display form.
// Strings are unquoted, whole numbers are formatted as integers and other
// numbers use the shortest float representation. Returns false for objects,
// arrays, null and invalid input.
func PrimitiveString(raw json.RawMessage) (string, bool) {
	if !IsPrimitive(raw) {
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		f, err := val.Float64()
		if err != nil {
			return val.String(), true
		}
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10), true
		}
		return strconv.FormatFloat(f, 'g', -1, 64), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}
