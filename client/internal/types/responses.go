package types

import (
	"bytes"
	"encoding/json"
)

// ------------------------------
// Response Types
// ------------------------------

// Result is the unwrapped payload of a successful call.
type Result struct {
	payload   json.RawMessage
	enveloped bool
}

// NewResult wraps payload. enveloped reports whether it came from a "data" key.
func NewResult(payload json.RawMessage, enveloped bool) *Result {
	return &Result{payload: payload, enveloped: enveloped}
}

// Unwrap returns the "data" member of body when body is an object that has
// one, otherwise body itself.
func Unwrap(body []byte) (json.RawMessage, bool) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err == nil {
		if data, ok := env["data"]; ok {
			return data, true
		}
	}
	return json.RawMessage(bytes.TrimSpace(body)), false
}

// Raw returns the payload bytes.
func (r *Result) Raw() json.RawMessage { return r.payload }

// Enveloped is false when the service answered without a "data" wrapper and
// the whole body was returned.
func (r *Result) Enveloped() bool { return r.enveloped }

// Decode unmarshals the payload into v.
func (r *Result) Decode(v any) error { return json.Unmarshal(r.payload, v) }

// Record decodes an object payload.
func (r *Result) Record() (Record, error) {
	var rec Record
	if err := r.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Records decodes an array payload.
func (r *Result) Records() ([]Record, error) {
	var recs []Record
	if err := r.Decode(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Value decodes the payload into a generic JSON value.
func (r *Result) Value() (any, error) {
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
