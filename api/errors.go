package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

// ErrorKind classifies where a failure came from.
type ErrorKind int

// error kinds
const (
	// KindInvalidParameter is a local validation failure; nothing was sent.
	KindInvalidParameter ErrorKind = iota + 1
	// KindTransport means the connection failed or was interrupted.
	KindTransport
	// KindRemote means the server answered with a non-2xx status.
	KindRemote
	// KindDecode means the response body did not match the expected schema.
	KindDecode
	// KindTemplate means a path template could not be filled.
	KindTemplate
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindTransport:
		return "TransportError"
	case KindRemote:
		return "RemoteError"
	case KindDecode:
		return "DecodeError"
	case KindTemplate:
		return "TemplateError"
	default:
		return "Unknown"
	}
}

// Source values reported by Error.Source
const (
	SourceLocal     = "local-validation"
	SourceTransport = "transport"
	SourceRemote    = "remote"
)

// Error is the single error type returned by the api package and the chain façades.
type Error struct {
	Kind ErrorKind
	// Status is the HTTP status, zero when no response was received.
	Status int
	// Code is the server supplied error code, if any. It may be numeric or textual.
	Code    string
	Message string
	Err     error
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// InvalidParameterError builds a local validation error. Façades use it for
// arguments they can reject before any network I/O.
func InvalidParameterError(format string, args ...any) *Error {
	return newError(KindInvalidParameter, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " [code %s]", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Source reports whether the error was produced locally, by the transport or by the server.
func (e *Error) Source() string {
	switch e.Kind {
	case KindTransport:
		return SourceTransport
	case KindRemote, KindDecode:
		return SourceRemote
	default:
		return SourceLocal
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// remoteError normalizes a non-2xx response into an *Error. The API answers
// errors either flat, {"code":..,"message":..}, or inside the v1 envelope,
// {"meta":{"error":{"code":..,"message":..}}}.
func remoteError(status int, statusText string, body []byte) *Error {
	apiErr := &Error{Kind: KindRemote, Status: status}

	obj := body
	if nested, dataType, _, err := jsonparser.Get(body, "meta", "error"); err == nil && dataType == jsonparser.Object {
		obj = nested
	}
	if msg, err := jsonparser.GetString(obj, "message"); err == nil {
		apiErr.Message = msg
	}
	apiErr.Code = errorCode(obj)

	if apiErr.Message == "" {
		text := strings.TrimSpace(string(body))
		if len(text) > 512 {
			text = text[:512]
		}
		if text == "" {
			apiErr.Message = statusText
		} else {
			apiErr.Message = fmt.Sprintf("%s: %s", statusText, text)
		}
	}
	return apiErr
}

// errorCode renders the "code" member of obj, which may be a number or a string.
func errorCode(obj []byte) string {
	value, dataType, _, err := jsonparser.Get(obj, "code")
	if err != nil {
		return ""
	}
	switch dataType {
	case jsonparser.String:
		if s, err := jsonparser.ParseString(value); err == nil {
			return s
		}
		return string(value)
	case jsonparser.Null:
		return ""
	default:
		return string(value)
	}
}
