package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// APIKeyHeader carries the API key on every request
const APIKeyHeader = "X-API-Key"

// Requester is what the chain façades need from a client: the shared configuration
// and a way to issue one call.
type Requester interface {
	Config() EndpointConfig
	Dispatch(ctx context.Context, method Method, path string, body []byte) (*Response, error)
}

// Client handles API calls to the remote service
type Client struct {
	cfg        EndpointConfig
	httpClient *http.Client
	log        logrus.FieldLogger
}

var _ Requester = (*Client)(nil)

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. The config timeout and the redirect
// policy of the default client are not applied to it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a new API client
func NewClient(cfg EndpointConfig, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
			// one request per call, and the api key never reaches another host
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithFields(logrus.Fields{
		"blockchain": cfg.Blockchain(),
		"network":    cfg.Network(),
	})
	return c
}

// Config returns the configuration shared by every call made through c
func (c *Client) Config() EndpointConfig {
	return c.cfg
}

// Dispatch issues exactly one request for path (relative to the configured host)
// and normalizes the outcome. GET must not carry a body. Every failure is an *Error.
func (c *Client) Dispatch(ctx context.Context, method Method, path string, body []byte) (*Response, error) {
	switch method {
	case MethodGet:
		if body != nil {
			return nil, InvalidParameterError("GET request to %s cannot carry a body", path)
		}
	case MethodPost:
	default:
		return nil, InvalidParameterError("unsupported method %q", method)
	}
	if !strings.HasPrefix(path, "/") {
		return nil, InvalidParameterError("path %q must start with '/'", path)
	}

	log := c.log.WithFields(logrus.Fields{"method": method, "path": path})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, string(method), c.cfg.Host()+path, reader)
	if err != nil {
		return nil, &Error{Kind: KindInvalidParameter, Message: "failed to create request", Err: err}
	}
	req.Header.Set(APIKeyHeader, c.cfg.APIKey())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debug("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return nil, &Error{Kind: KindTransport, Message: "failed to send request", Err: err}
	}
	defer func() {
		if errClose := resp.Body.Close(); errClose != nil {
			log.WithError(errClose).Warn("failed to close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("failed to read response")
		return nil, &Error{Kind: KindTransport, Status: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	log = log.WithField("status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := remoteError(resp.StatusCode, statusText(resp), respBody)
		log.WithField("message", apiErr.Message).Warn("request rejected")
		return nil, apiErr
	}

	respBody = bytes.TrimSpace(respBody)
	if len(respBody) > 0 && !json.Valid(respBody) {
		log.Warn("response is not valid JSON")
		return nil, &Error{
			Kind:    KindDecode,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to parse response: %.128q", respBody),
		}
	}

	log.Debug("request completed")

	return &Response{
		Status:  resp.StatusCode,
		Header:  resp.Header,
		Payload: json.RawMessage(respBody),
	}, nil
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
