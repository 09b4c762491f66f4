package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "local",
			err:  InvalidParameterError("query parameter %q is not allowed", "foo"),
			want: `InvalidParameter: query parameter "foo" is not allowed`,
		},
		{
			name: "remote with code",
			err:  &Error{Kind: KindRemote, Status: 500, Code: "500", Message: "internal"},
			want: "RemoteError (status 500) [code 500]: internal",
		},
		{
			name: "transport with cause",
			err:  &Error{Kind: KindTransport, Message: "failed to send request", Err: cause},
			want: "TransportError: failed to send request: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindTransport, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindTransport))
	assert.False(t, IsKind(err, KindRemote))
	assert.False(t, IsKind(cause, KindTransport))
}

func TestRemoteError_TruncatesLongBodies(t *testing.T) {
	body := make([]byte, 2048)
	for i := range body {
		body[i] = 'x'
	}

	apiErr := remoteError(503, "503 Service Unavailable", body)
	assert.Equal(t, KindRemote, apiErr.Kind)
	assert.Len(t, apiErr.Message, len("503 Service Unavailable: ")+512)
}

func TestRemoteError_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    string
		message string
	}{
		{"flat numeric code", `{"code":500,"message":"internal"}`, "500", "internal"},
		{"flat string code", `{"code":"not_found","message":"no such address"}`, "not_found", "no such address"},
		{"envelope", `{"meta":{"error":{"code":"401","message":"bad key"}}}`, "401", "bad key"},
		{"null code", `{"code":null,"message":"odd"}`, "", "odd"},
		{"no message", `{"code":7}`, "7", `400 Bad Request: {"code":7}`},
		{"not json", `upstream down`, "", "400 Bad Request: upstream down"},
		{"empty", ``, "", "400 Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := remoteError(400, "400 Bad Request", []byte(tt.body))
			assert.Equal(t, KindRemote, apiErr.Kind)
			assert.Equal(t, 400, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}
