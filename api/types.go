package api

import (
	"encoding/json"
	"net/http"
)

// Method is an HTTP method the API accepts
type Method string

// supported methods
const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// Response is the successful (2xx) outcome of a call.
type Response struct {
	Status  int
	Header  http.Header
	Payload json.RawMessage
}

// envelope is the v1 success wrapper: {"payload": ..., "meta": ...}
type envelope struct {
	Payload json.RawMessage `json:"payload"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

// Decode unmarshals the whole response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Payload) == 0 {
		return &Error{Kind: KindDecode, Status: r.Status, Message: "empty response body"}
	}
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return &Error{Kind: KindDecode, Status: r.Status, Message: "failed to parse response", Err: err}
	}
	return nil
}

// DecodePayload unmarshals the "payload" member of the v1 envelope into v.
func (r *Response) DecodePayload(v any) error {
	var env envelope
	if err := r.Decode(&env); err != nil {
		return err
	}
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return &Error{Kind: KindDecode, Status: r.Status, Message: "no payload in response"}
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return &Error{Kind: KindDecode, Status: r.Status, Message: "failed to parse payload", Err: err}
	}
	return nil
}

// Meta returns the raw "meta" member of the v1 envelope, nil if absent.
func (r *Response) Meta() json.RawMessage {
	var env envelope
	if err := json.Unmarshal(r.Payload, &env); err != nil {
		return nil
	}
	return env.Meta
}
